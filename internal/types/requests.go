package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScoreRequest is the request body for scoring a single interview response.
type ScoreRequest struct {
	Question        string          `json:"question" validate:"required,min=1"`
	Response        string          `json:"response"`
	DurationSeconds int             `json:"duration_seconds" validate:"gte=0"`
	Criteria        ScoringCriteria `json:"criteria" validate:"required"`
	UseAI           bool            `json:"use_ai,omitempty"`

	// Optional session metadata; when present the score is also recorded
	// as a PerformanceMetrics entry for the user.
	UserID              *uuid.UUID `json:"user_id,omitempty"`
	SessionID           *uuid.UUID `json:"session_id,omitempty"`
	CompletionRate      float64    `json:"completion_rate,omitempty"`
	AverageResponseTime float64    `json:"average_response_time,omitempty"`
	TotalQuestions      int        `json:"total_questions,omitempty"`
	AnsweredQuestions   int        `json:"answered_questions,omitempty"`
}

// RecordChoiceRequest logs the user's actual session choice against the
// recommendation they were shown.
type RecordChoiceRequest struct {
	Recommendation AdaptiveRecommendation `json:"recommendation" validate:"required"`
	UserChoice     SessionChoice          `json:"user_choice" validate:"required"`
}

// UpdateOutcomeRequest fills in the outcome of a previously recorded choice.
type UpdateOutcomeRequest struct {
	OverallScore int  `json:"overall_score" validate:"gte=0,lte=100"`
	Completed    bool `json:"completed"`
}

// UpdateWeightsRequest replaces a user's custom scoring weights.
type UpdateWeightsRequest struct {
	Weights ScoringWeights `json:"weights" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RecordChoiceRequest using the validator.
func (r *RecordChoiceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateOutcomeRequest using the validator.
func (r *UpdateOutcomeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
