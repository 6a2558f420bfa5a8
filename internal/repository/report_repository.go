package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/armahcreates/iwil/internal/domain"
)

// ReportRepository lists report summaries joined with client names.
type ReportRepository interface {
	EnsureSchema(ctx context.Context) error
	List(ctx context.Context) ([]domain.Report, error)
	Insert(ctx context.Context, report *domain.Report) error
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) EnsureSchema(ctx context.Context) error {
	const createTable = `
        CREATE TABLE IF NOT EXISTS reports (
            id TEXT PRIMARY KEY,
            client_id TEXT NOT NULL REFERENCES clients(id),
            type TEXT NOT NULL DEFAULT 'monthly',
            status TEXT NOT NULL DEFAULT 'draft',
            deadline TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_modified TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            template_name TEXT NOT NULL DEFAULT '',
            completion_percentage NUMERIC NOT NULL DEFAULT 0
        )`
	_, err := r.pool.Exec(ctx, createTable)
	return err
}

func (r *reportRepository) List(ctx context.Context) ([]domain.Report, error) {
	const query = `
        SELECT r.id, r.client_id, c.name AS client_name, r.type, r.status, r.deadline, r.created_at, r.last_modified, r.template_name, r.completion_percentage
        FROM reports r
        JOIN clients c ON r.client_id = c.id
        ORDER BY r.last_modified DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.ClientID,
			&report.ClientName,
			&report.Type,
			&report.Status,
			&report.Deadline,
			&report.CreatedAt,
			&report.LastModified,
			&report.TemplateName,
			&report.CompletionPercentage,
		); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}

func (r *reportRepository) Insert(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (id, client_id, type, status, deadline, template_name, completion_percentage)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		report.ID,
		report.ClientID,
		report.Type,
		report.Status,
		report.Deadline,
		report.TemplateName,
		report.CompletionPercentage,
	)
	return err
}
