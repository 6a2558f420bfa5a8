package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/armahcreates/iwil/internal/domain"
)

// ClientRepository lists wellness clients for the practice views.
type ClientRepository interface {
	EnsureSchema(ctx context.Context) error
	List(ctx context.Context) ([]domain.Client, error)
	Insert(ctx context.Context, client *domain.Client) error
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) EnsureSchema(ctx context.Context) error {
	const createTable = `
        CREATE TABLE IF NOT EXISTS clients (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            avatar_key TEXT NOT NULL DEFAULT '',
            last_visit TIMESTAMPTZ,
            next_appointment TIMESTAMPTZ,
            health_protocol TEXT NOT NULL DEFAULT '',
            adherence_score NUMERIC NOT NULL DEFAULT 0,
            progress_score NUMERIC NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`
	_, err := r.pool.Exec(ctx, createTable)
	return err
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	const query = `
        SELECT id, name, email, avatar_key, last_visit, next_appointment, health_protocol, adherence_score, progress_score, created_at
        FROM clients ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.AvatarKey,
			&client.LastVisit,
			&client.NextAppointment,
			&client.HealthProtocol,
			&client.AdherenceScore,
			&client.ProgressScore,
			&client.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, client)
	}
	return result, rows.Err()
}

func (r *clientRepository) Insert(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (id, name, email, avatar_key, last_visit, next_appointment, health_protocol, adherence_score, progress_score)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.AvatarKey,
		client.LastVisit,
		client.NextAppointment,
		client.HealthProtocol,
		client.AdherenceScore,
		client.ProgressScore,
	)
	return err
}
