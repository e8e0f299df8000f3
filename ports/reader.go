package ports

import (
	"context"

	"cogmetrics/domain/core"
	"cogmetrics/domain/metrics"
	"cogmetrics/domain/report"
)

// ReaderPort provides read-only access to stored results for UI/API.
// This ensures the UI cannot write raw captures or modify stored reports.
type ReaderPort interface {
	// Report queries (read-only)
	ListReports(ctx context.Context, filters ReportFilters) ([]ReportSummary, error)
	GetReport(ctx context.Context, id core.ReportID) (*report.Report, error)

	// Session queries (read-only)
	ListSessions(ctx context.Context, subjectID core.SubjectID, limit int) ([]SessionSummary, error)
	GetSnapshot(ctx context.Context, sessionID core.SessionID) (*metrics.Snapshot, error)
}

// SessionSummary is the listing row for captured sessions
type SessionSummary struct {
	SessionID   core.SessionID
	SubjectID   core.SubjectID
	TaskCount   int
	CompletedAt core.Timestamp
	HasReport   bool
}
