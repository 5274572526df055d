package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/llm"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/prompts"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/session"
	"github.com/ela-ravi/ai-interviewer-reactjs/internal/utils"
)

// how much prior conversation the interviewer sees when asking follow-ups
const (
	contextWindowRecords = 2
	contextAnswerLimit   = 100
)

// Interviewer asks one technical question per call, optionally following up
// on the last answers
type Interviewer struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewInterviewer(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Interviewer {
	return &Interviewer{
		provider: provider,
		prompts:  promptManager,
		logger:   logger,
	}
}

// AskQuestion produces the next interview question. The raw model output is
// used as-is; the single-question contract is enforced by the role
// instructions, not parsed here.
func (i *Interviewer) AskQuestion(ctx context.Context, technology, position string, history []session.QARecord, questionNumber int) (string, error) {
	system, err := i.prompts.System("interviewer", map[string]string{
		"Technology": technology,
		"Position":   position,
	})
	if err != nil {
		return "", err
	}

	prompt, err := i.prompts.Build("interviewer", "question", map[string]interface{}{
		"QuestionNumber": questionNumber,
		"Technology":     technology,
		"Position":       position,
		"Context":        historyContext(history),
	})
	if err != nil {
		return "", err
	}

	question, err := i.provider.Complete(ctx, system, prompt)
	if err != nil {
		return "", err
	}

	i.logger.Debug("Question generated",
		zap.Int("question_number", questionNumber),
		zap.String("provider", i.provider.GetProviderName()))

	return question, nil
}

// historyContext renders the last few Q&A pairs so the interviewer can ask
// follow-ups. Answers are truncated to keep the prompt small.
func historyContext(history []session.QARecord) string {
	if len(history) == 0 {
		return ""
	}

	window := history
	if len(window) > contextWindowRecords {
		window = window[len(window)-contextWindowRecords:]
	}

	var sb strings.Builder
	sb.WriteString("\nPrevious questions and answers context (for follow-up):\n")
	for idx, record := range window {
		fmt.Fprintf(&sb, "Q%d: %s\nA%d: %s\n",
			idx+1, record.Question,
			idx+1, utils.Truncate(record.Answer, contextAnswerLimit))
	}
	return sb.String()
}
