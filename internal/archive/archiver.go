package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/interview"
)

// Archiver persists finished interview transcripts. Live sessions stay
// strictly in memory; only completed interviews are written out.
type Archiver struct {
	db *gorm.DB
}

func NewArchiver(db *gorm.DB) (*Archiver, error) {
	if err := db.AutoMigrate(&InterviewTranscript{}); err != nil {
		return nil, fmt.Errorf("failed to migrate transcript table: %w", err)
	}
	return &Archiver{db: db}, nil
}

// SaveTranscript writes one finished interview. Saving the same session twice
// updates the earlier row.
func (a *Archiver) SaveTranscript(sessionID, technology, position string, summary interview.Summary) error {
	historyJSON, err := json.Marshal(summary.History)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	transcript := &InterviewTranscript{
		SessionID:      sessionID,
		Technology:     technology,
		Position:       position,
		TotalQuestions: summary.TotalQuestions,
		AverageScore:   summary.AverageScore,
		Summary:        summary.Summary,
		History:        string(historyJSON),
		EndedAt:        time.Now(),
	}

	var existing InterviewTranscript
	err = a.db.Where("session_id = ?", sessionID).First(&existing).Error
	switch {
	case err == nil:
		transcript.ID = existing.ID
		transcript.CreatedAt = existing.CreatedAt
		if err := a.db.Save(transcript).Error; err != nil {
			return fmt.Errorf("failed to update transcript: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.db.Create(transcript).Error; err != nil {
			return fmt.Errorf("failed to store transcript: %w", err)
		}
	default:
		return fmt.Errorf("failed to look up transcript: %w", err)
	}

	return nil
}

// ListTranscripts returns archived transcripts, newest first.
func (a *Archiver) ListTranscripts(limit int) ([]InterviewTranscript, error) {
	var transcripts []InterviewTranscript

	query := a.db.Order("ended_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&transcripts).Error; err != nil {
		return nil, fmt.Errorf("failed to list transcripts: %w", err)
	}
	return transcripts, nil
}

// CountTranscripts returns the number of archived interviews.
func (a *Archiver) CountTranscripts() (int64, error) {
	var count int64
	if err := a.db.Model(&InterviewTranscript{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
