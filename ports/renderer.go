package ports

import (
	"context"
	"io"

	"cogmetrics/domain/report"
)

// RendererPort converts a composed report into a presentation format.
// Rendering is read-only: implementations never modify the report.
type RendererPort interface {
	// RenderMarkdown writes the report as a markdown document
	RenderMarkdown(ctx context.Context, r *report.Report, w io.Writer) error

	// RenderHTML writes the report as a standalone HTML document
	RenderHTML(ctx context.Context, r *report.Report, w io.Writer) error
}

// ExporterPort writes tabular exports of report metrics for offline review
type ExporterPort interface {
	// ExportWorkbook writes the report's metric snapshot as a spreadsheet
	ExportWorkbook(ctx context.Context, reports []*report.Report, w io.Writer) error
}
