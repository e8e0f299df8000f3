package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema holds the two storage tables. Raw captures are the audit trail;
// reports denormalize the columns the listing queries filter on.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS raw_captures (
		session_id   TEXT PRIMARY KEY,
		subject_id   TEXT NOT NULL,
		input_hash   TEXT NOT NULL,
		payload      JSONB NOT NULL,
		completed_at TIMESTAMPTZ,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_raw_captures_subject ON raw_captures (subject_id, completed_at DESC)`,
	`CREATE TABLE IF NOT EXISTS reports (
		id           TEXT NOT NULL,
		session_id   TEXT NOT NULL,
		subject_id   TEXT NOT NULL,
		audience     TEXT NOT NULL,
		als          DOUBLE PRECISION NOT NULL,
		als_category TEXT NOT NULL,
		input_hash   TEXT NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL,
		document     JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (session_id, audience)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_subject ON reports (subject_id, generated_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_id ON reports (id)`,
}

// EnsureSchema creates the storage tables if they do not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
