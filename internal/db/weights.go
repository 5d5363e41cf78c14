package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/interview-coach/internal/types"
)

// SaveScoringWeights upserts a user's custom weight set.
func (db *DB) SaveScoringWeights(ctx context.Context, userID uuid.UUID, weights types.ScoringWeights) error {
	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("failed to marshal weights: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO scoring_weights (user_id, weights)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET weights = $2, updated_at = NOW()`,
		userID, weightsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save weights: %w", err)
	}
	return nil
}

// GetScoringWeights retrieves a user's custom weight set; returns (nil, nil)
// when the user has no custom weights.
func (db *DB) GetScoringWeights(ctx context.Context, userID uuid.UUID) (types.ScoringWeights, error) {
	var weightsJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT weights FROM scoring_weights WHERE user_id = $1`,
		userID,
	).Scan(&weightsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weights: %w", err)
	}

	var weights types.ScoringWeights
	if err := json.Unmarshal(weightsJSON, &weights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights: %w", err)
	}
	return weights, nil
}
