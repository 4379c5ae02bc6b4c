package customer

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"storecrm/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id::text, name, email, phone, address, COALESCE(cpf, ''), birth_date, registered_at`

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

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (name, email, phone, address, cpf, birth_date)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(
		ctx,
		q,
		c.Name,
		strings.ToLower(c.Email),
		c.Phone,
		c.Address,
		c.CPF,
		c.BirthDate,
	))
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET name = $2, email = $3, phone = $4, address = $5, cpf = NULLIF($6, ''), birth_date = $7
WHERE id = $1
RETURNING ` + customerColumns
	return r.scanCustomer(r.pool.QueryRow(
		ctx,
		q,
		c.ID,
		c.Name,
		strings.ToLower(c.Email),
		c.Phone,
		c.Address,
		c.CPF,
		c.BirthDate,
	))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("customer repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE lower(email) = lower($1) LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE cpf = $1 LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, cpf))
}

func (r *postgresRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE lower(email) = lower($1))`, email).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE cpf = $1)`, cpf).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers ORDER BY registered_at DESC`
	return r.queryCustomers(ctx, q)
}

func (r *postgresRepo) SearchByName(ctx context.Context, name string) ([]domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE name ILIKE '%' || $1 || '%' ORDER BY name`
	return r.queryCustomers(ctx, q, name)
}

func (r *postgresRepo) SearchByPhone(ctx context.Context, phone string) ([]domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE phone LIKE '%' || $1 || '%' ORDER BY name`
	return r.queryCustomers(ctx, q, phone)
}

func (r *postgresRepo) ListRegisteredBetween(ctx context.Context, start, end time.Time) ([]domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE registered_at BETWEEN $1 AND $2 ORDER BY registered_at`
	return r.queryCustomers(ctx, q, start, end)
}

func (r *postgresRepo) CountRegisteredToday(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM customers WHERE registered_at::date = CURRENT_DATE`).Scan(&n)
	if err != nil {
		r.logger.Printf("customer repo: count registered today error=%v", err)
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) queryCustomers(ctx context.Context, q string, args ...any) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("customer repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CPF, &c.BirthDate, &c.RegisteredAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("customer repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CPF, &c.BirthDate, &c.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
