package ports

import (
	"context"

	"cogmetrics/domain/core"
	"cogmetrics/domain/report"
)

// ReportFilters narrows report listings
type ReportFilters struct {
	SubjectID *core.SubjectID
	Audience  *report.Audience
	Limit     int
	Offset    int
}

// ReportSummary is the lightweight listing row for stored reports
type ReportSummary struct {
	ID          core.ReportID
	SessionID   core.SessionID
	SubjectID   core.SubjectID
	Audience    report.Audience
	ALS         float64
	ALSCategory string
	GeneratedAt core.Timestamp
}

// ReportRepository defines the interface for persisted report operations
type ReportRepository interface {
	// SaveReport stores a composed report
	SaveReport(ctx context.Context, r *report.Report) error

	// GetReport retrieves a report by ID
	GetReport(ctx context.Context, id core.ReportID) (*report.Report, error)

	// GetBySession retrieves the stored report for a session and audience
	GetBySession(ctx context.Context, sessionID core.SessionID, audience report.Audience) (*report.Report, error)

	// ListReports returns report summaries matching the filters, newest first
	ListReports(ctx context.Context, filters ReportFilters) ([]ReportSummary, error)

	// DeleteReport removes a stored report
	DeleteReport(ctx context.Context, id core.ReportID) error
}
