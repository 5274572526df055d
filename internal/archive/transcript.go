package archive

import (
	"time"

	"gorm.io/gorm"
)

// InterviewTranscript is the archived form of one finished interview.
// History is stored as JSON text so the schema stays flat.
type InterviewTranscript struct {
	gorm.Model
	SessionID      string    `gorm:"uniqueIndex;not null" json:"session_id"`
	Technology     string    `gorm:"not null" json:"technology"`
	Position       string    `gorm:"not null" json:"position"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	AverageScore   float64   `gorm:"not null" json:"average_score"`
	Summary        string    `gorm:"type:text" json:"summary"`
	History        string    `gorm:"type:text" json:"-"`
	EndedAt        time.Time `gorm:"not null" json:"ended_at"`
}
