package product

import (
	"context"

	"storecrm/internal/domain"
	"github.com/shopspring/decimal"
)

// Repository persists and fetches products.
type Repository interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error)
	CountLowStock(ctx context.Context) (int64, error)
}
