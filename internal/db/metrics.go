package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/types"
)

// metricsCap is the maximum number of stored metrics per user; older
// records are evicted on insert.
const metricsCap = 50

// InsertPerformanceMetrics stores one session's metrics and prunes the
// user's history to the newest metricsCap records.
func (db *DB) InsertPerformanceMetrics(ctx context.Context, m *types.PerformanceMetrics) error {
	breakdownJSON, err := json.Marshal(m.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO performance_metrics
		 (user_id, session_id, recorded_at, difficulty, interview_type, overall_score,
		  breakdown, completion_rate, average_response_time, total_questions, answered_questions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		m.UserID, m.SessionID, m.Timestamp, m.Difficulty, m.InterviewType, m.OverallScore,
		breakdownJSON, m.CompletionRate, m.AverageResponseTime, m.TotalQuestions, m.AnsweredQuestions,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to insert metrics: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`DELETE FROM performance_metrics
		 WHERE user_id = $1 AND id NOT IN (
		     SELECT id FROM performance_metrics
		     WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2
		 )`,
		m.UserID, metricsCap,
	)
	if err != nil {
		return fmt.Errorf("failed to prune metrics: %w", err)
	}
	return nil
}

// ListPerformanceMetrics retrieves a user's most recent metrics, newest first.
func (db *DB) ListPerformanceMetrics(ctx context.Context, userID uuid.UUID, limit int) ([]types.PerformanceMetrics, error) {
	if limit <= 0 || limit > metricsCap {
		limit = metricsCap
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, session_id, recorded_at, difficulty, interview_type, overall_score,
		        breakdown, completion_rate, average_response_time, total_questions, answered_questions
		 FROM performance_metrics
		 WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	defer rows.Close()

	var metrics []types.PerformanceMetrics
	for rows.Next() {
		var m types.PerformanceMetrics
		var breakdownJSON []byte
		if err := rows.Scan(&m.ID, &m.UserID, &m.SessionID, &m.Timestamp, &m.Difficulty,
			&m.InterviewType, &m.OverallScore, &breakdownJSON, &m.CompletionRate,
			&m.AverageResponseTime, &m.TotalQuestions, &m.AnsweredQuestions); err != nil {
			return nil, fmt.Errorf("failed to scan metrics: %w", err)
		}
		if err := json.Unmarshal(breakdownJSON, &m.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to unmarshal breakdown: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}
