package excel

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cogmetrics/domain/metrics"
	"cogmetrics/domain/report"
	"cogmetrics/ports"

	"github.com/xuri/excelize/v2"
)

// Exporter writes report metric snapshots to a spreadsheet for offline
// review. One row per report, one column per snapshot figure.
type Exporter struct{}

// NewExporter creates a spreadsheet exporter
func NewExporter() ports.ExporterPort {
	return &Exporter{}
}

var snapshotHeader = []string{
	"report_id", "session_id", "subject_id", "audience", "generated_at",
	"als", "als_category", "als_floor",
	"mc", "cpi", "tau", "tau_band",
	"mean_rt", "rt_sd", "rt_cv", "sample_size",
	"overall_accuracy", "omission_rate", "commission_rate",
	"subtype", "flags",
}

// ExportWorkbook writes the reports' metric snapshots as a spreadsheet
func (e *Exporter) ExportWorkbook(ctx context.Context, reports []*report.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Snapshots"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for col, name := range snapshotHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for row, rep := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap := rep.Snapshot
		values := []interface{}{
			rep.ID.String(), rep.SessionID.String(), rep.SubjectID.String(),
			string(rep.Audience), rep.GeneratedAt.String(),
			snap.ALS, snap.ALSCategory, snap.ALSFloor,
			snap.MC, snap.CPI, snap.Tau, snap.TauBand,
			snap.MeanRT, snap.RTSD, snap.RTCV, snap.SampleSize,
			snap.OverallAccuracy, snap.OmissionRate, snap.CommissionRate,
			snap.Subtype, flagSummary(snap),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// flagSummary joins the fired flags into one cell
func flagSummary(snap metrics.Snapshot) string {
	var fired []string
	for _, fl := range []struct {
		name string
		on   bool
	}{
		{"inattention", snap.Inattention},
		{"impulsivity", snap.Impulsivity},
		{"variability", snap.Variability},
		{"compensation", snap.Compensation},
		{"hyperfocus", snap.Hyperfocus},
		{"executive_dysfunction", snap.ExecutiveDysfunction},
		{"processing_deficit", snap.ProcessingDeficit},
	} {
		if fl.on {
			fired = append(fired, fl.name)
		}
	}
	return strings.Join(fired, ",")
}
