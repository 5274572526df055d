package models

// session creation
type CreateInterviewResponse struct {
	SessionID  string `json:"session_id"`
	Technology string `json:"technology"`
	Position   string `json:"position"`
	Message    string `json:"message"`
}

// start / next-question
type QuestionResponse struct {
	SessionID      string `json:"session_id"`
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
}

// one processed answer
type AnswerResponse struct {
	SessionID      string `json:"session_id"`
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Feedback       string `json:"feedback"`
	Score          int    `json:"score"`
	ScoreDetails   string `json:"score_details"`
}

// one archived Q&A cycle inside a summary
type QARecordView struct {
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Feedback       string `json:"feedback"`
	Score          int    `json:"score"`
	ScoreDetails   string `json:"score_details"`
}

// end-of-interview aggregate
type SummaryView struct {
	AverageScore   float64        `json:"average_score"`
	TotalQuestions int            `json:"total_questions"`
	Scores         []int          `json:"scores,omitempty"`
	Summary        string         `json:"summary"`
	History        []QARecordView `json:"history,omitempty"`
}

type EndInterviewResponse struct {
	SessionID  string      `json:"session_id"`
	Technology string      `json:"technology"`
	Position   string      `json:"position"`
	Summary    SummaryView `json:"summary"`
}

// session info snapshot
type SessionInfoResponse struct {
	SessionID             string  `json:"session_id"`
	Technology            string  `json:"technology"`
	Position              string  `json:"position"`
	CurrentQuestionNumber int     `json:"current_question_number"`
	QuestionsAnswered     int     `json:"questions_answered"`
	AverageScore          float64 `json:"average_score"`
	IsActive              bool    `json:"is_active"`
	CreatedAt             string  `json:"created_at"`
	LastActivity          string  `json:"last_activity"`
}

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}
