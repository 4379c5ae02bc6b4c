package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type accountSeed struct {
	Username string
	Password string
	Role     string
}

type productSeed struct {
	Name        string
	Description string
	Price       string
	Stock       int
	Category    string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	accounts := []accountSeed{
		{Username: "admin", Password: "Admin123!", Role: "ADMIN"},
		{Username: "user", Password: "User1234!", Role: "USER"},
	}
	for _, a := range accounts {
		if err := ensureAccount(ctx, pool, a); err != nil {
			return fmt.Errorf("ensure account %s: %w", a.Username, err)
		}
	}

	products := []productSeed{
		{
			Name:        "Demo Notebook",
			Description: "14-inch laptop for demo purposes",
			Price:       "3499.90",
			Stock:       25,
			Category:    "electronics",
		},
		{
			Name:        "Demo Mug",
			Description: "Ceramic mug with demo logo",
			Price:       "12.99",
			Stock:       4,
			Category:    "kitchen",
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureAccount(ctx context.Context, pool *pgxpool.Pool, a accountSeed) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO accounts (username, password_hash, role)
VALUES ($1, $2, $3)
ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role
`
	_, err = pool.Exec(ctx, q, a.Username, string(hashed), a.Role)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (name, description, price, stock, category)
VALUES ($1, $2, $3::numeric, $4, $5)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    price = EXCLUDED.price,
    stock = EXCLUDED.stock,
    category = EXCLUDED.category
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, p.Stock, p.Category)
	return err
}
