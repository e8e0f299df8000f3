package ports

import (
	"context"

	"cogmetrics/domain/core"
	"cogmetrics/domain/intake"
)

// CapturePort persists raw assessment submissions exactly as received.
// The raw record is the audit trail: reports can be regenerated from it at
// any time, so it is stored before any normalization runs.
type CapturePort interface {
	// StoreRawInput persists a raw submission and returns its input hash
	StoreRawInput(ctx context.Context, raw *intake.RawAssessmentInput) (core.InputHash, error)

	// GetRawInput retrieves a raw submission by session
	GetRawInput(ctx context.Context, sessionID core.SessionID) (*intake.RawAssessmentInput, error)

	// ListSessions returns the stored session IDs for a subject, newest first
	ListSessions(ctx context.Context, subjectID core.SubjectID, limit int) ([]core.SessionID, error)
}
