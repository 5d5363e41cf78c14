package types

import (
	"time"

	"github.com/google/uuid"
)

// PerformanceMetrics is one stored record per completed session.
// Records are append-only and capped at the 50 most recent per user.
type PerformanceMetrics struct {
	ID                  uuid.UUID      `json:"id"`
	UserID              uuid.UUID      `json:"user_id"`
	SessionID           uuid.UUID      `json:"session_id"`
	Timestamp           time.Time      `json:"timestamp"`
	Difficulty          Difficulty     `json:"difficulty"`
	InterviewType       InterviewType  `json:"interview_type"`
	OverallScore        int            `json:"overall_score"`
	Breakdown           ScoreBreakdown `json:"breakdown"`
	CompletionRate      float64        `json:"completion_rate"`
	AverageResponseTime float64        `json:"average_response_time"` // seconds
	TotalQuestions      int            `json:"total_questions"`
	AnsweredQuestions   int            `json:"answered_questions"`
}

// TypePerformance aggregates scores for one interview type.
type TypePerformance struct {
	AverageScore float64 `json:"average_score"`
	SessionCount int     `json:"session_count"`
	BestScore    int     `json:"best_score"`
}

// TrendPoint is one point in a user's recent score trend.
type TrendPoint struct {
	Timestamp    time.Time `json:"timestamp"`
	OverallScore int       `json:"overall_score"`
}

// UserPerformanceProfile is derived on demand from stored metrics; it is
// never persisted.
type UserPerformanceProfile struct {
	TotalSessions       int                               `json:"total_sessions"`
	AverageOverallScore float64                           `json:"average_overall_score"`
	Strengths           []Category                        `json:"strengths"`
	Weaknesses          []Category                        `json:"weaknesses"`
	PreferredDifficulty Difficulty                        `json:"preferred_difficulty"`
	PerformanceByType   map[InterviewType]TypePerformance `json:"performance_by_type"`
	RecentTrends        []TrendPoint                      `json:"recent_trends"`
}
