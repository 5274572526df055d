package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/interview"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/llm"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/middleware"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/models"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/session"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/utils"
)

type InterviewHandler struct {
	service *interview.Service
	logger  *zap.Logger
}

func NewInterviewHandler(service *interview.Service, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		service: service,
		logger:  logger,
	}
}

func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	// Get the validated request from middleware
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	s := h.service.CreateSession(req.Technology, req.Position)

	utils.JSON(w, http.StatusCreated, models.CreateInterviewResponse{
		SessionID:  s.ID,
		Technology: s.Technology,
		Position:   s.Position,
		Message:    "Interview session created successfully",
	})
}

func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	result, err := h.service.Start(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, sessionID, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.QuestionResponse{
		SessionID:      result.SessionID,
		QuestionNumber: result.QuestionNumber,
		Question:       result.Question,
	})
}

func (h *InterviewHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	result, err := h.service.SubmitAnswer(r.Context(), sessionID, req.Answer)
	if err != nil {
		h.writeError(w, sessionID, err)
		return
	}

	record := result.Record
	utils.JSON(w, http.StatusOK, models.AnswerResponse{
		SessionID:      result.SessionID,
		QuestionNumber: record.QuestionNumber,
		Question:       record.Question,
		Answer:         record.Answer,
		Feedback:       record.Feedback,
		Score:          record.Score,
		ScoreDetails:   record.ScoreDetails,
	})
}

func (h *InterviewHandler) NextQuestionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	result, err := h.service.NextQuestion(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, sessionID, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.QuestionResponse{
		SessionID:      result.SessionID,
		QuestionNumber: result.QuestionNumber,
		Question:       result.Question,
	})
}

func (h *InterviewHandler) EndHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	result, err := h.service.End(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, sessionID, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.EndInterviewResponse{
		SessionID:  result.SessionID,
		Technology: result.Technology,
		Position:   result.Position,
		Summary: models.SummaryView{
			AverageScore:   result.Summary.AverageScore,
			TotalQuestions: result.Summary.TotalQuestions,
			Scores:         result.Summary.Scores,
			Summary:        result.Summary.Summary,
			History:        toRecordViews(result.Summary.History),
		},
	})
}

func (h *InterviewHandler) InfoHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	info, err := h.service.Info(sessionID)
	if err != nil {
		h.writeError(w, sessionID, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.SessionInfoResponse{
		SessionID:             info.SessionID,
		Technology:            info.Technology,
		Position:              info.Position,
		CurrentQuestionNumber: info.CurrentQuestionNumber,
		QuestionsAnswered:     info.QuestionsAnswered,
		AverageScore:          info.AverageScore,
		IsActive:              info.IsActive,
		CreatedAt:             info.CreatedAt.Format(time.RFC3339),
		LastActivity:          info.LastActivity.Format(time.RFC3339),
	})
}

func (h *InterviewHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	if !h.service.DeleteSession(sessionID) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found",
		})
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"message": "Session deleted successfully",
	})
}

func toRecordViews(history []session.QARecord) []models.QARecordView {
	views := make([]models.QARecordView, 0, len(history))
	for _, record := range history {
		views = append(views, models.QARecordView{
			QuestionNumber: record.QuestionNumber,
			Question:       record.Question,
			Answer:         record.Answer,
			Feedback:       record.Feedback,
			Score:          record.Score,
			ScoreDetails:   record.ScoreDetails,
		})
	}
	return views
}

// writeError maps core failures onto client-facing status codes
func (h *InterviewHandler) writeError(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, interview.ErrSessionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found",
		})
	case errors.Is(err, interview.ErrNoActiveQuestion):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "no_active_question",
			Message: "No active question to answer",
		})
	case errors.Is(err, interview.ErrSessionEnded):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "session_ended",
			Message: "Interview has already ended",
		})
	default:
		var provErr *llm.ProviderError
		if errors.As(err, &provErr) {
			h.logger.Error("AI provider error",
				zap.String("session_id", sessionID),
				zap.String("code", provErr.Code),
				zap.Error(err))

			status := http.StatusBadGateway
			if provErr.Code == llm.ErrCodeRateLimit {
				status = http.StatusTooManyRequests
			}
			utils.JSON(w, status, models.ErrorResponse{
				Code:    "provider_error",
				Message: "AI provider request failed",
			})
			return
		}

		h.logger.Error("Interview operation failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "internal_error",
			Message: "Internal server error",
		})
	}
}
