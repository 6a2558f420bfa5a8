package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/armahcreates/iwil/internal/domain"
)

// ErrNotFound is returned when no account matches the lookup.
var ErrNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned when an insert collides with an existing
// email (case-insensitive). For the Postgres store the unique index is
// the authoritative guard; any pre-insert existence check is only an
// early exit.
var ErrDuplicateEmail = errors.New("email already registered")

// StaffRepository abstracts where staff accounts live: the Postgres
// table in normal deployments, the in-memory list in demo mode.
// Services are written against this interface only.
type StaffRepository interface {
	// EnsureSchema idempotently creates the underlying storage location.
	// Safe to call on every request.
	EnsureSchema(ctx context.Context) error
	// GetByEmail matches case-insensitively. Callers are expected to
	// pass normalized (lowercased) emails.
	GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error)
	// GetByID returns the account regardless of active flag; callers
	// decide how to treat inactive accounts.
	GetByID(ctx context.Context, id string) (*domain.StaffAccount, error)
	Insert(ctx context.Context, account *domain.StaffAccount) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository returns a Postgres-backed implementation.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

func (r *staffRepository) EnsureSchema(ctx context.Context) error {
	const createTable = `
        CREATE TABLE IF NOT EXISTS staff (
            id TEXT PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'staff',
            organization TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            is_active BOOLEAN NOT NULL DEFAULT true,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`
	const createIndex = `
        CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_email_lower ON staff (lower(email))`

	if _, err := r.pool.Exec(ctx, createTable); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, createIndex)
	return err
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, role, organization, phone, is_active, created_at, updated_at
        FROM staff WHERE lower(email) = lower($1)`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffAccount, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, role, organization, phone, is_active, created_at, updated_at
        FROM staff WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *staffRepository) Insert(ctx context.Context, account *domain.StaffAccount) error {
	const query = `
        INSERT INTO staff (id, first_name, last_name, email, password_hash, role, organization, phone, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		account.ID,
		account.FirstName,
		account.LastName,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.Organization,
		account.Phone,
		account.IsActive,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *staffRepository) scanOne(row pgx.Row) (*domain.StaffAccount, error) {
	var account domain.StaffAccount
	if err := row.Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.Organization,
		&account.Phone,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}
