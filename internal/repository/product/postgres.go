package product

import (
	"context"
	"errors"
	"io"
	"log"

	"storecrm/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `id::text, name, description, price, stock, category, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, stock, category)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q, p.Name, p.Description, p.Price, p.Stock, p.Category))
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, description = $3, price = $4, stock = $5, category = $6
WHERE id = $1
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q, p.ID, p.Name, p.Description, p.Price, p.Stock, p.Category))
}

// Upsert inserts the product or, when the name is already taken, overwrites
// the existing row. Used by the bulk importer, not the API.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, stock, category)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    stock = EXCLUDED.stock,
    category = EXCLUDED.category
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q, p.Name, p.Description, p.Price, p.Stock, p.Category))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1 LIMIT 1`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY name`
	return r.queryProducts(ctx, q, name)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY name`
	return r.queryProducts(ctx, q, category)
}

func (r *postgresRepo) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE stock < $1 ORDER BY stock`
	return r.queryProducts(ctx, q, domain.LowStockThreshold)
}

func (r *postgresRepo) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE price BETWEEN $1 AND $2 ORDER BY price`
	return r.queryProducts(ctx, q, min, max)
}

func (r *postgresRepo) CountLowStock(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products WHERE stock < $1`, domain.LowStockThreshold).Scan(&n)
	if err != nil {
		r.logger.Printf("product repo: count low stock error=%v", err)
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("product repo: scan error=%v", err)
		return nil, err
	}
	return &p, nil
}
