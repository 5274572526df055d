package routers

import (
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/handlers"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/middleware"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, archiveHandler *handlers.ArchiveHandler) {
	router.Route("/api/interview", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/create", interviewHandler.CreateHandler)
		r.Post("/{session_id}/start", interviewHandler.StartHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/{session_id}/answer", interviewHandler.AnswerHandler)
		r.Post("/{session_id}/next-question", interviewHandler.NextQuestionHandler)
		r.Post("/{session_id}/end", interviewHandler.EndHandler)
		r.Get("/{session_id}", interviewHandler.InfoHandler)
		r.Delete("/{session_id}", interviewHandler.DeleteHandler)

		r.Get("/transcripts", archiveHandler.ListTranscriptsHandler)
	})
}
