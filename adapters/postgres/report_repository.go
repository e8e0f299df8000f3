package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"cogmetrics/domain/core"
	"cogmetrics/domain/report"
	"cogmetrics/ports"

	"github.com/jmoiron/sqlx"
)

// ReportRepositoryImpl implements ReportRepository for PostgreSQL. The full
// composed report is stored as JSONB; the columns used for listing and
// filtering are denormalized alongside it.
type ReportRepositoryImpl struct {
	db *sqlx.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

type reportRow struct {
	ID          string  `db:"id"`
	SessionID   string  `db:"session_id"`
	SubjectID   string  `db:"subject_id"`
	Audience    string  `db:"audience"`
	ALS         float64 `db:"als"`
	ALSCategory string  `db:"als_category"`
	GeneratedAt sql.NullTime
	Document    []byte `db:"document"`
}

// SaveReport stores a composed report
func (r *ReportRepositoryImpl) SaveReport(ctx context.Context, rep *report.Report) error {
	doc, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO reports (id, session_id, subject_id, audience, als, als_category, input_hash, generated_at, document, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (session_id, audience) DO UPDATE
		SET id = EXCLUDED.id,
		    als = EXCLUDED.als,
		    als_category = EXCLUDED.als_category,
		    input_hash = EXCLUDED.input_hash,
		    generated_at = EXCLUDED.generated_at,
		    document = EXCLUDED.document
	`, rep.ID.String(), rep.SessionID.String(), rep.SubjectID.String(), string(rep.Audience),
		rep.Snapshot.ALS, rep.Snapshot.ALSCategory, rep.InputHash.String(),
		rep.GeneratedAt.Time(), doc)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by ID
func (r *ReportRepositoryImpl) GetReport(ctx context.Context, id core.ReportID) (*report.Report, error) {
	return r.getDocument(ctx, `SELECT document FROM reports WHERE id = $1`, id.String())
}

// GetBySession retrieves the stored report for a session and audience
func (r *ReportRepositoryImpl) GetBySession(ctx context.Context, sessionID core.SessionID, audience report.Audience) (*report.Report, error) {
	return r.getDocument(ctx,
		`SELECT document FROM reports WHERE session_id = $1 AND audience = $2`,
		sessionID.String(), string(audience))
}

func (r *ReportRepositoryImpl) getDocument(ctx context.Context, query string, args ...interface{}) (*report.Report, error) {
	var doc []byte
	err := r.db.GetContext(ctx, &doc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var rep report.Report
	if err := json.Unmarshal(doc, &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report document: %w", err)
	}
	return &rep, nil
}

// ListReports returns report summaries matching the filters, newest first
func (r *ReportRepositoryImpl) ListReports(ctx context.Context, filters ports.ReportFilters) ([]ports.ReportSummary, error) {
	query := `
		SELECT id, session_id, subject_id, audience, als, als_category, generated_at
		FROM reports
		WHERE 1=1
	`
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.SubjectID != nil {
		query += " AND subject_id = " + arg(filters.SubjectID.String())
	}
	if filters.Audience != nil {
		query += " AND audience = " + arg(string(*filters.Audience))
	}
	query += " ORDER BY generated_at DESC"
	if filters.Limit > 0 {
		query += " LIMIT " + arg(filters.Limit)
	}
	if filters.Offset > 0 {
		query += " OFFSET " + arg(filters.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []ports.ReportSummary
	for rows.Next() {
		var row reportRow
		if err := rows.Scan(&row.ID, &row.SessionID, &row.SubjectID, &row.Audience,
			&row.ALS, &row.ALSCategory, &row.GeneratedAt); err != nil {
			return nil, err
		}
		s := ports.ReportSummary{
			ID:          core.ReportID(row.ID),
			SessionID:   core.SessionID(row.SessionID),
			SubjectID:   core.SubjectID(row.SubjectID),
			Audience:    report.Audience(row.Audience),
			ALS:         row.ALS,
			ALSCategory: row.ALSCategory,
		}
		if row.GeneratedAt.Valid {
			s.GeneratedAt = core.NewTimestamp(row.GeneratedAt.Time)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeleteReport removes a stored report
func (r *ReportRepositoryImpl) DeleteReport(ctx context.Context, id core.ReportID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("report %s: %w", id, core.ErrNotFound)
	}
	return nil
}
