package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cogmetrics/domain/core"
	"cogmetrics/domain/metrics"
	"cogmetrics/domain/report"
	"cogmetrics/ports"

	"github.com/jmoiron/sqlx"
)

// ReaderImpl implements the read-only query surface over the capture and
// report tables. The UI wires against this, never against the repositories.
type ReaderImpl struct {
	db      *sqlx.DB
	reports ports.ReportRepository
}

// NewReader creates a read-only query adapter
func NewReader(db *sqlx.DB) ports.ReaderPort {
	return &ReaderImpl{db: db, reports: NewReportRepository(db)}
}

// ListReports returns report summaries matching the filters, newest first
func (r *ReaderImpl) ListReports(ctx context.Context, filters ports.ReportFilters) ([]ports.ReportSummary, error) {
	return r.reports.ListReports(ctx, filters)
}

// GetReport retrieves a report by ID
func (r *ReaderImpl) GetReport(ctx context.Context, id core.ReportID) (*report.Report, error) {
	return r.reports.GetReport(ctx, id)
}

// ListSessions returns captured sessions for a subject, newest first
func (r *ReaderImpl) ListSessions(ctx context.Context, subjectID core.SubjectID, limit int) ([]ports.SessionSummary, error) {
	query := `
		SELECT c.session_id, c.subject_id, c.completed_at,
		       (SELECT COUNT(*) FROM jsonb_object_keys(c.payload->'tasks')) AS task_count,
		       EXISTS (SELECT 1 FROM reports r WHERE r.session_id = c.session_id) AS has_report
		FROM raw_captures c
		WHERE c.subject_id = $1
		ORDER BY c.completed_at DESC
	`
	args := []interface{}{subjectID.String()}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []ports.SessionSummary
	for rows.Next() {
		var (
			sessionID   string
			subject     string
			completedAt sql.NullTime
			taskCount   int
			hasReport   bool
		)
		if err := rows.Scan(&sessionID, &subject, &completedAt, &taskCount, &hasReport); err != nil {
			return nil, err
		}
		s := ports.SessionSummary{
			SessionID: core.SessionID(sessionID),
			SubjectID: core.SubjectID(subject),
			TaskCount: taskCount,
			HasReport: hasReport,
		}
		if completedAt.Valid {
			s.CompletedAt = core.NewTimestamp(completedAt.Time)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetSnapshot returns the metric snapshot embedded in the session's stored
// report, preferring the clinician rendering when both audiences exist.
func (r *ReaderImpl) GetSnapshot(ctx context.Context, sessionID core.SessionID) (*metrics.Snapshot, error) {
	for _, audience := range []report.Audience{report.AudienceClinician, report.AudiencePatient} {
		rep, err := r.reports.GetBySession(ctx, sessionID, audience)
		if err == nil {
			snap := rep.Snapshot
			return &snap, nil
		}
		if !errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("snapshot for session %s: %w", sessionID, core.ErrNotFound)
}
