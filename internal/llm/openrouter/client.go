package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ela-ravi/ai-interviewer-reactjs/internal/llm"
)

// Client talks to the OpenRouter chat completions API
// (OpenAI-compatible wire format)
type Client struct {
	config *Config
	client *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

func NewClient(config *Config) (*Client, error) {
	return &Client{
		config: config,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// sends one system+user exchange and returns the generated text
func (c *Client) Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to encode request",
			Err:      err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to create request",
			Err:      err,
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		code := llm.ErrCodeServiceDown
		if errors.Is(err, context.DeadlineExceeded) {
			code = llm.ErrCodeTimeout
		}
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     code,
			Message:  "Request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to read response",
			Err:      err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     statusToCode(resp.StatusCode),
			Message:  "API returned status " + resp.Status,
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to decode response",
			Err:      err,
		}
	}
	if parsed.Error != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeServiceDown,
			Message:  parsed.Error.Message,
		}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}

	return parsed.Choices[0].Message.Content, nil
}

func (c *Client) GetProviderName() string {
	return "openrouter"
}

func statusToCode(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return llm.ErrCodeAPIKey
	case http.StatusTooManyRequests:
		return llm.ErrCodeRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return llm.ErrCodeTimeout
	default:
		return llm.ErrCodeServiceDown
	}
}
