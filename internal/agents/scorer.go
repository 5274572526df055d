package agents

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/llm"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/prompts"
)

// score used when the model's output cannot be parsed
const fallbackScore = 5

// Scorer grades one answer on a 0-10 scale.
type Scorer struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewScorer(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Scorer {
	return &Scorer{
		provider: provider,
		prompts:  promptManager,
		logger:   logger,
	}
}

// Evaluate returns the numeric score and the scorer's raw justification text.
// The raw text is always preserved, even when the score line is malformed.
func (s *Scorer) Evaluate(ctx context.Context, technology, position, question, answer string) (int, string, error) {
	system, err := s.prompts.System("scorer", map[string]string{
		"Technology": technology,
		"Position":   position,
	})
	if err != nil {
		return 0, "", err
	}

	prompt, err := s.prompts.Build("scorer", "evaluate", map[string]string{
		"Question": question,
		"Answer":   answer,
	})
	if err != nil {
		return 0, "", err
	}

	raw, err := s.provider.Complete(ctx, system, prompt)
	if err != nil {
		return 0, "", err
	}

	score, ok := ParseScore(raw)
	if !ok {
		s.logger.Warn("Failed to parse score, using neutral fallback",
			zap.Int("fallback", fallbackScore),
			zap.String("raw", raw))
		score = fallbackScore
	}

	return score, raw, nil
}

// ParseScore extracts the score from scorer output shaped like "SCORE: 8/10".
// It scans for the first line containing "SCORE:", takes the text after the
// marker up to the first "/", and parses it as an integer clamped to [0,10].
// Returns false when no usable score line is present.
func ParseScore(raw string) (int, bool) {
	for _, line := range strings.Split(raw, "\n") {
		idx := strings.Index(line, "SCORE:")
		if idx < 0 {
			continue
		}

		value := line[idx+len("SCORE:"):]
		if slash := strings.Index(value, "/"); slash >= 0 {
			value = value[:slash]
		}

		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		if score < 0 {
			score = 0
		}
		if score > 10 {
			score = 10
		}
		return score, true
	}
	return 0, false
}
