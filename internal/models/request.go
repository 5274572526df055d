package models

import (
	"strings"
)

type CreateInterviewRequest struct {
	Technology string `json:"technology"`
	Position   string `json:"position"`
}

// implements the Validator interface
func (r *CreateInterviewRequest) Validate() error {
	if strings.TrimSpace(r.Technology) == "" {
		return &ErrorResponse{
			Code:    "missing_technology",
			Message: "Technology field is required",
		}
	}

	if strings.TrimSpace(r.Position) == "" {
		return &ErrorResponse{
			Code:    "missing_position",
			Message: "Position field is required",
		}
	}

	return nil
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

// Presence is all the boundary checks; empty-after-trim answers are still
// forwarded to the coach and scorer untouched.
func (r *SubmitAnswerRequest) Validate() error {
	if r.Answer == "" {
		return &ErrorResponse{
			Code:    "missing_answer",
			Message: "Answer field is required",
		}
	}
	return nil
}
