package session

import (
	"sync"
	"time"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/utils"
)

// QARecord is one completed question/answer cycle.
// Records are immutable once appended to a session's history.
type QARecord struct {
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	Feedback       string `json:"feedback"`
	Score          int    `json:"score"`
	ScoreDetails   string `json:"score_details"`
}

// Session is one end-to-end interview run for a fixed technology/position pair.
// Interview operations must hold the session lock for their full duration:
// at most one operation is in flight per session, while distinct sessions
// proceed in parallel.
type Session struct {
	mu sync.Mutex

	ID         string
	Technology string
	Position   string

	CurrentQuestionNumber int
	CurrentQuestion       string // empty unless awaiting an answer
	History               []QARecord
	IsActive              bool

	CreatedAt time.Time

	// The activity timestamp has its own lock: the store's expiry sweep
	// reads it while an interview operation may be holding the session
	// lock across a provider call.
	activityMu   sync.Mutex
	lastActivity time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Touch refreshes the activity timestamp. Every store lookup counts as activity.
func (s *Session) Touch() {
	s.activityMu.Lock()
	s.lastActivity = time.Now()
	s.activityMu.Unlock()
}

// LastActive returns the activity timestamp.
func (s *Session) LastActive() time.Time {
	s.activityMu.Lock()
	defer s.activityMu.Unlock()
	return s.lastActivity
}

// Snapshot of session state for reporting.
type Info struct {
	SessionID             string
	Technology            string
	Position              string
	CurrentQuestionNumber int
	QuestionsAnswered     int
	AverageScore          float64
	IsActive              bool
	CreatedAt             time.Time
	LastActivity          time.Time
}

// Info snapshots the session. Callers must not already hold the session lock.
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Info{
		SessionID:             s.ID,
		Technology:            s.Technology,
		Position:              s.Position,
		CurrentQuestionNumber: s.CurrentQuestionNumber,
		QuestionsAnswered:     len(s.History),
		AverageScore:          averageScore(s.History),
		IsActive:              s.IsActive,
		CreatedAt:             s.CreatedAt,
		LastActivity:          s.LastActive(),
	}
}

// Scores projects the per-question scores out of the history.
// The caller must hold the session lock.
func (s *Session) Scores() []int {
	scores := make([]int, 0, len(s.History))
	for _, record := range s.History {
		scores = append(scores, record.Score)
	}
	return scores
}

func averageScore(history []QARecord) float64 {
	if len(history) == 0 {
		return 0
	}
	sum := 0
	for _, record := range history {
		sum += record.Score
	}
	return utils.Round2(float64(sum) / float64(len(history)))
}
