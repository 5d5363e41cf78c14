// Package db provides PostgreSQL database access for user, metrics, and
// choice-log storage.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// schema is applied on startup; all statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS performance_metrics (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	session_id UUID NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	difficulty TEXT NOT NULL,
	interview_type TEXT NOT NULL,
	overall_score INT NOT NULL,
	breakdown JSONB NOT NULL,
	completion_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
	average_response_time DOUBLE PRECISION NOT NULL DEFAULT 0,
	total_questions INT NOT NULL DEFAULT 0,
	answered_questions INT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_metrics_user_time ON performance_metrics (user_id, recorded_at DESC);

CREATE TABLE IF NOT EXISTS choice_records (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	recommendation JSONB NOT NULL,
	user_choice JSONB NOT NULL,
	followed BOOLEAN NOT NULL,
	outcome JSONB
);
CREATE INDEX IF NOT EXISTS idx_choices_user_time ON choice_records (user_id, recorded_at DESC);

CREATE TABLE IF NOT EXISTS scoring_weights (
	user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	weights JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema. Safe to call on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
