package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
	"cogmetrics/ports"

	"github.com/jmoiron/sqlx"
)

// CaptureRepositoryImpl implements CapturePort for PostgreSQL. Raw
// submissions are stored as JSONB exactly as received so reports can be
// regenerated byte-for-byte later.
type CaptureRepositoryImpl struct {
	db *sqlx.DB
}

// NewCaptureRepository creates a new PostgreSQL capture repository
func NewCaptureRepository(db *sqlx.DB) ports.CapturePort {
	return &CaptureRepositoryImpl{db: db}
}

// StoreRawInput persists a raw submission and returns its input hash
func (r *CaptureRepositoryImpl) StoreRawInput(ctx context.Context, raw *intake.RawAssessmentInput) (core.InputHash, error) {
	payload, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("marshal raw input: %w", err)
	}
	hash := core.ComputeInputHash(raw)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO raw_captures (session_id, subject_id, input_hash, payload, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (session_id) DO UPDATE
		SET subject_id = EXCLUDED.subject_id,
		    input_hash = EXCLUDED.input_hash,
		    payload = EXCLUDED.payload,
		    completed_at = EXCLUDED.completed_at
	`, raw.SessionID, raw.SubjectID, hash.String(), payload, raw.CompletedAt.Time())
	if err != nil {
		return "", fmt.Errorf("insert raw capture: %w", err)
	}
	return hash, nil
}

// GetRawInput retrieves a raw submission by session
func (r *CaptureRepositoryImpl) GetRawInput(ctx context.Context, sessionID core.SessionID) (*intake.RawAssessmentInput, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, `
		SELECT payload FROM raw_captures WHERE session_id = $1
	`, string(sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var raw intake.RawAssessmentInput
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal raw capture %s: %w", sessionID, err)
	}
	return &raw, nil
}

// ListSessions returns the stored session IDs for a subject, newest first
func (r *CaptureRepositoryImpl) ListSessions(ctx context.Context, subjectID core.SubjectID, limit int) ([]core.SessionID, error) {
	query := `
		SELECT session_id FROM raw_captures
		WHERE subject_id = $1
		ORDER BY completed_at DESC
	`
	args := []interface{}{string(subjectID)}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}

	sessions := make([]core.SessionID, len(ids))
	for i, id := range ids {
		sessions[i] = core.SessionID(id)
	}
	return sessions, nil
}
