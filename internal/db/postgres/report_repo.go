package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Pawhub/internal/core/reports"
)

type postgresReportRepo struct {
	db *sql.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sql.DB) reports.Repository {
	return &postgresReportRepo{db: db}
}

const reportColumns = `
	id, post_id, reporter_id, reason, description, status,
	reviewed_by, reviewed_at, created_at`

func scanReport(row interface{ Scan(...any) error }) (*reports.Report, error) {
	var report reports.Report
	err := row.Scan(
		&report.ID, &report.PostID, &report.ReporterID, &report.Reason,
		&report.Description, &report.Status, &report.ReviewedBy,
		&report.ReviewedAt, &report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *postgresReportRepo) Create(ctx context.Context, report *reports.Report) (*reports.Report, error) {
	query := `
		INSERT INTO reports (post_id, reporter_id, reason, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		report.PostID, report.ReporterID, report.Reason,
		report.Description, report.Status,
	).Scan(&report.ID, &report.CreatedAt)

	if err != nil {
		// One report per (post, reporter): unique constraint, not a merge
		if strings.Contains(err.Error(), "unique_post_reporter") {
			return nil, reports.ErrAlreadyReported
		}
		if strings.Contains(err.Error(), "reports_post_id_fkey") {
			return nil, reports.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	return report, nil
}

func (r *postgresReportRepo) GetByID(ctx context.Context, id int64) (*reports.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports WHERE id = $1`

	report, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, reports.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}

	return report, nil
}

func (r *postgresReportRepo) SetResolution(ctx context.Context, report *reports.Report) (*reports.Report, error) {
	query := `
		UPDATE reports
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1
		RETURNING` + reportColumns

	resolved, err := scanReport(r.db.QueryRowContext(ctx, query,
		report.ID, report.Status, report.ReviewedBy, report.ReviewedAt))
	if err == sql.ErrNoRows {
		return nil, reports.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve report: %w", err)
	}

	return resolved, nil
}

func (r *postgresReportRepo) ListAll(ctx context.Context) ([]*reports.Report, error) {
	query := `SELECT` + reportColumns + ` FROM reports ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectReports(rows)
}

func (r *postgresReportRepo) ListByStatus(ctx context.Context, status string) ([]*reports.Report, error) {
	query := `SELECT` + reportColumns + `
		FROM reports
		WHERE status = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by status: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectReports(rows)
}

func (r *postgresReportRepo) ListByPost(ctx context.Context, postID int64) ([]*reports.Report, error) {
	query := `SELECT` + reportColumns + `
		FROM reports
		WHERE post_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by post: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectReports(rows)
}

func (r *postgresReportRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return reports.ErrReportNotFound
	}

	return nil
}

func collectReports(rows *sql.Rows) ([]*reports.Report, error) {
	var result []*reports.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		result = append(result, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return result, nil
}
