package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/types"
)

// choicesCap is the maximum number of stored choice records per user.
const choicesCap = 100

// InsertChoiceRecord stores one recommendation/choice pair and prunes the
// user's log to the newest choicesCap entries.
func (db *DB) InsertChoiceRecord(ctx context.Context, record *types.UserChoiceRecord) error {
	recJSON, err := json.Marshal(record.Recommendation)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}
	choiceJSON, err := json.Marshal(record.UserChoice)
	if err != nil {
		return fmt.Errorf("failed to marshal user choice: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO choice_records (id, user_id, recorded_at, recommendation, user_choice, followed)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.UserID, record.Timestamp, recJSON, choiceJSON, record.Followed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert choice record: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`DELETE FROM choice_records
		 WHERE user_id = $1 AND id NOT IN (
		     SELECT id FROM choice_records
		     WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2
		 )`,
		record.UserID, choicesCap,
	)
	if err != nil {
		return fmt.Errorf("failed to prune choice records: %w", err)
	}
	return nil
}

// ListChoiceRecords retrieves a user's recent choice records, newest first.
func (db *DB) ListChoiceRecords(ctx context.Context, userID uuid.UUID, limit int) ([]types.UserChoiceRecord, error) {
	if limit <= 0 || limit > choicesCap {
		limit = choicesCap
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, recorded_at, recommendation, user_choice, followed, outcome
		 FROM choice_records
		 WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list choice records: %w", err)
	}
	defer rows.Close()

	var records []types.UserChoiceRecord
	for rows.Next() {
		var r types.UserChoiceRecord
		var recJSON, choiceJSON []byte
		var outcomeJSON []byte
		if err := rows.Scan(&r.ID, &r.UserID, &r.Timestamp, &recJSON, &choiceJSON, &r.Followed, &outcomeJSON); err != nil {
			return nil, fmt.Errorf("failed to scan choice record: %w", err)
		}
		if err := json.Unmarshal(recJSON, &r.Recommendation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recommendation: %w", err)
		}
		if err := json.Unmarshal(choiceJSON, &r.UserChoice); err != nil {
			return nil, fmt.Errorf("failed to unmarshal user choice: %w", err)
		}
		if len(outcomeJSON) > 0 {
			var outcome types.SessionOutcome
			if err := json.Unmarshal(outcomeJSON, &outcome); err != nil {
				return nil, fmt.Errorf("failed to unmarshal outcome: %w", err)
			}
			r.Outcome = &outcome
		}
		records = append(records, r)
	}
	return records, nil
}

// UpdateChoiceOutcome attaches a session outcome to a recorded choice.
func (db *DB) UpdateChoiceOutcome(ctx context.Context, choiceID uuid.UUID, outcome types.SessionOutcome) error {
	outcomeJSON, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE choice_records SET outcome = $1 WHERE id = $2`,
		outcomeJSON, choiceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update choice outcome: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("choice record not found: %s", choiceID)
	}
	return nil
}
