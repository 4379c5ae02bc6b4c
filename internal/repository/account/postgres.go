package account

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"storecrm/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	const q = `
INSERT INTO accounts (username, password_hash, role)
VALUES ($1, $2, $3)
RETURNING id::text, username, password_hash, role, created_at
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, strings.ToLower(a.Username), a.PasswordHash, string(a.Role)))
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	const q = `
SELECT id::text, username, password_hash, role, created_at
FROM accounts
WHERE username = lower($1)
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, username))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const q = `
SELECT id::text, username, password_hash, role, created_at
FROM accounts
WHERE id = $1
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var role string
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &role, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("account repo: scan error=%v", err)
		return nil, err
	}
	a.Role = domain.Role(role)
	return &a, nil
}
