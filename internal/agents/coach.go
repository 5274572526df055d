package agents

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/llm"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/prompts"
)

// Coach critiques individual answers and writes the end-of-interview summary.
// The feedback text is opaque to the rest of the system.
type Coach struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewCoach(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Coach {
	return &Coach{
		provider: provider,
		prompts:  promptManager,
		logger:   logger,
	}
}

// Critique returns free-text coaching feedback for one answer.
func (c *Coach) Critique(ctx context.Context, technology, position, question, answer string) (string, error) {
	system, err := c.prompts.System("coach", map[string]string{
		"Technology": technology,
		"Position":   position,
	})
	if err != nil {
		return "", err
	}

	prompt, err := c.prompts.Build("coach", "critique", map[string]string{
		"Question": question,
		"Answer":   answer,
	})
	if err != nil {
		return "", err
	}

	return c.provider.Complete(ctx, system, prompt)
}

// Summarize produces the 2-3 sentence overall assessment for a finished
// interview.
func (c *Coach) Summarize(ctx context.Context, technology, position string, totalQuestions int, averageScore float64, scores []int) (string, error) {
	system, err := c.prompts.System("coach", map[string]string{
		"Technology": technology,
		"Position":   position,
	})
	if err != nil {
		return "", err
	}

	prompt, err := c.prompts.Build("coach", "summary", map[string]interface{}{
		"Technology":     technology,
		"Position":       position,
		"TotalQuestions": totalQuestions,
		"AverageScore":   fmt.Sprintf("%.1f", averageScore),
		"Scores":         fmt.Sprintf("%v", scores),
	})
	if err != nil {
		return "", err
	}

	return c.provider.Complete(ctx, system, prompt)
}
