package types

import (
	"time"

	"github.com/google/uuid"
)

// EstimatedDifficulty describes how the recommended session is expected to
// feel relative to the user's current level.
type EstimatedDifficulty string

const (
	EstimateChallenging EstimatedDifficulty = "challenging"
	EstimateAppropriate EstimatedDifficulty = "appropriate"
	EstimateComfortable EstimatedDifficulty = "comfortable"
)

// Rationale explains why a recommendation was made.
type Rationale struct {
	Primary    string   `json:"primary"`
	Supporting []string `json:"supporting,omitempty"`
}

// AlternativeOption is a secondary configuration the user may pick instead.
type AlternativeOption struct {
	Difficulty Difficulty    `json:"difficulty"`
	Type       InterviewType `json:"type"`
	Reason     string        `json:"reason"`
}

// AdaptiveRecommendation is the next-session suggestion produced by the
// adaptive engine. It is generated fresh per request and not persisted.
type AdaptiveRecommendation struct {
	RecommendedDifficulty Difficulty          `json:"recommended_difficulty"`
	RecommendedType       InterviewType       `json:"recommended_type"`
	Confidence            int                 `json:"confidence"` // 0-100
	Rationale             Rationale           `json:"rationale"`
	AlternativeOptions    []AlternativeOption `json:"alternative_options,omitempty"`
	FocusAreas            []Category          `json:"focus_areas,omitempty"`
	EstimatedDifficulty   EstimatedDifficulty `json:"estimated_difficulty"`
}

// SessionChoice is the difficulty/type the user actually picked.
type SessionChoice struct {
	Difficulty Difficulty    `json:"difficulty"`
	Type       InterviewType `json:"type"`
}

// SessionOutcome records how the chosen session went, filled in after the
// fact via UpdateSessionOutcome.
type SessionOutcome struct {
	OverallScore int  `json:"overall_score"`
	Completed    bool `json:"completed"`
}

// UserChoiceRecord logs one recommendation alongside the user's actual
// choice. Append-only, capped at the 100 most recent per user; used only
// for retrospective accuracy reporting.
type UserChoiceRecord struct {
	ID             uuid.UUID              `json:"id"`
	UserID         uuid.UUID              `json:"user_id"`
	Timestamp      time.Time              `json:"timestamp"`
	Recommendation AdaptiveRecommendation `json:"recommendation"`
	UserChoice     SessionChoice          `json:"user_choice"`
	Followed       bool                   `json:"was_recommendation_followed"`
	Outcome        *SessionOutcome        `json:"session_outcome,omitempty"`
}
