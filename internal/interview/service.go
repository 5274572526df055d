package interview

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/agents"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/session"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/utils"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoActiveQuestion = errors.New("no active question")
	ErrSessionEnded     = errors.New("interview already ended")
)

const emptySummaryText = "No questions answered yet."

// QuestionResult is returned by Start and NextQuestion.
type QuestionResult struct {
	SessionID      string
	QuestionNumber int
	Question       string
}

// AnswerResult is the full record produced by one submitted answer.
type AnswerResult struct {
	SessionID string
	Record    session.QARecord
}

// Summary aggregates a finished interview.
type Summary struct {
	AverageScore   float64
	TotalQuestions int
	Scores         []int
	Summary        string
	History        []session.QARecord
}

// EndResult wraps the summary with the session's fixed configuration.
type EndResult struct {
	SessionID  string
	Technology string
	Position   string
	Summary    Summary
}

// TranscriptArchiver persists finished interview transcripts.
type TranscriptArchiver interface {
	SaveTranscript(sessionID, technology, position string, summary Summary) error
}

// Service orchestrates the three role agents over the session store.
// Each operation holds the session lock for its full duration, so one
// session never has two operations in flight.
type Service struct {
	store       *session.Store
	interviewer *agents.Interviewer
	coach       *agents.Coach
	scorer      *agents.Scorer
	archiver    TranscriptArchiver
	logger      *zap.Logger
}

func NewService(store *session.Store, interviewer *agents.Interviewer, coach *agents.Coach, scorer *agents.Scorer, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		interviewer: interviewer,
		coach:       coach,
		scorer:      scorer,
		logger:      logger,
	}
}

// SetArchiver enables best-effort transcript archiving on End.
func (svc *Service) SetArchiver(archiver TranscriptArchiver) {
	svc.archiver = archiver
}

// CreateSession registers a new interview session.
func (svc *Service) CreateSession(technology, position string) *session.Session {
	return svc.store.Create(
		utils.NormalizeTechnology(technology),
		utils.NormalizePosition(position),
	)
}

// Start issues question 1. Calling it again simply re-issues the first
// question.
func (svc *Service) Start(ctx context.Context, sessionID string) (*QuestionResult, error) {
	s, ok := svc.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Lock()
	defer s.Unlock()

	if !s.IsActive {
		return nil, ErrSessionEnded
	}

	question, err := svc.interviewer.AskQuestion(ctx, s.Technology, s.Position, s.History, 1)
	if err != nil {
		return nil, err
	}

	s.CurrentQuestionNumber = 1
	s.CurrentQuestion = question

	return &QuestionResult{
		SessionID:      s.ID,
		QuestionNumber: 1,
		Question:       question,
	}, nil
}

// SubmitAnswer runs the coach and scorer over the pending question and commits
// the record. The coach and scorer calls are independent and run concurrently;
// if either fails nothing is committed and the pending question stays in place
// so the caller can retry.
func (svc *Service) SubmitAnswer(ctx context.Context, sessionID, answer string) (*AnswerResult, error) {
	s, ok := svc.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Lock()
	defer s.Unlock()

	if !s.IsActive {
		return nil, ErrSessionEnded
	}
	if s.CurrentQuestion == "" {
		return nil, ErrNoActiveQuestion
	}

	question := s.CurrentQuestion

	var (
		feedback     string
		score        int
		scoreDetails string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		feedback, err = svc.coach.Critique(gctx, s.Technology, s.Position, question, answer)
		return err
	})
	g.Go(func() error {
		var err error
		score, scoreDetails, err = svc.scorer.Evaluate(gctx, s.Technology, s.Position, question, answer)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	record := session.QARecord{
		QuestionNumber: s.CurrentQuestionNumber,
		Question:       question,
		Answer:         answer,
		Feedback:       feedback,
		Score:          score,
		ScoreDetails:   scoreDetails,
	}
	s.History = append(s.History, record)
	s.CurrentQuestion = ""

	svc.logger.Info("Answer processed",
		zap.String("session_id", s.ID),
		zap.Int("question_number", record.QuestionNumber),
		zap.Int("score", record.Score))

	return &AnswerResult{SessionID: s.ID, Record: record}, nil
}

// NextQuestion advances to the next question. Skipping an unanswered question
// is allowed; the pending question is simply replaced.
func (svc *Service) NextQuestion(ctx context.Context, sessionID string) (*QuestionResult, error) {
	s, ok := svc.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Lock()
	defer s.Unlock()

	if !s.IsActive {
		return nil, ErrSessionEnded
	}

	nextNumber := s.CurrentQuestionNumber + 1
	question, err := svc.interviewer.AskQuestion(ctx, s.Technology, s.Position, s.History, nextNumber)
	if err != nil {
		return nil, err
	}

	s.CurrentQuestionNumber = nextNumber
	s.CurrentQuestion = question

	return &QuestionResult{
		SessionID:      s.ID,
		QuestionNumber: nextNumber,
		Question:       question,
	}, nil
}

// End closes the session and builds the aggregate summary. With an empty
// history the coach is never invoked and a fixed summary is returned.
func (svc *Service) End(ctx context.Context, sessionID string) (*EndResult, error) {
	s, ok := svc.store.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.Lock()
	defer s.Unlock()

	if len(s.History) == 0 {
		s.IsActive = false
		return &EndResult{
			SessionID:  s.ID,
			Technology: s.Technology,
			Position:   s.Position,
			Summary: Summary{
				AverageScore:   0,
				TotalQuestions: 0,
				Summary:        emptySummaryText,
			},
		}, nil
	}

	scores := s.Scores()
	average := utils.Round2(mean(scores))

	narrative, err := svc.coach.Summarize(ctx, s.Technology, s.Position, len(scores), average, scores)
	if err != nil {
		return nil, err
	}

	s.IsActive = false

	history := make([]session.QARecord, len(s.History))
	copy(history, s.History)

	result := &EndResult{
		SessionID:  s.ID,
		Technology: s.Technology,
		Position:   s.Position,
		Summary: Summary{
			AverageScore:   average,
			TotalQuestions: len(scores),
			Scores:         scores,
			Summary:        narrative,
			History:        history,
		},
	}

	if svc.archiver != nil {
		if err := svc.archiver.SaveTranscript(s.ID, s.Technology, s.Position, result.Summary); err != nil {
			svc.logger.Error("Failed to archive transcript",
				zap.String("session_id", s.ID),
				zap.Error(err))
		}
	}

	return result, nil
}

// Info returns a snapshot of session state.
func (svc *Service) Info(sessionID string) (session.Info, error) {
	s, ok := svc.store.Get(sessionID)
	if !ok {
		return session.Info{}, ErrSessionNotFound
	}
	return s.Info(), nil
}

// DeleteSession removes a session and reports whether it existed.
func (svc *Service) DeleteSession(sessionID string) bool {
	return svc.store.Delete(sessionID)
}

func mean(scores []int) float64 {
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return float64(sum) / float64(len(scores))
}
