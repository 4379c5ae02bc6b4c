package product

import (
	"context"
	"fmt"
	"strings"

	"storecrm/internal/domain"
	productrepo "storecrm/internal/repository/product"
	"github.com/shopspring/decimal"
)

// Service validates and orchestrates product CRUD and stock queries.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures fields accepted when creating a product. Price and
// Stock are pointers so "missing" is distinguishable from zero.
type CreateInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    string           `json:"category"`
}

// Create validates the input, enforces name uniqueness and persists the product.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("product name is required")
	}
	if in.Price == nil || in.Price.Sign() <= 0 {
		return nil, domain.Invalid("price must be greater than zero")
	}
	if in.Stock == nil || *in.Stock < 0 {
		return nil, domain.Invalid("stock must be zero or greater")
	}

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("product name %q: %w", name, domain.ErrAlreadyExists)
	}

	return s.repo.Create(ctx, domain.Product{
		Name:        name,
		Description: in.Description,
		Price:       *in.Price,
		Stock:       *in.Stock,
		Category:    in.Category,
	})
}

// Get returns the product or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all products.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// SearchByName matches products whose name contains the text, case-insensitive.
func (s *Service) SearchByName(ctx context.Context, name string) ([]domain.Product, error) {
	return s.repo.SearchByName(ctx, name)
}

// ListByCategory returns products in the given category.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

// ListLowStock returns products below the restock threshold.
func (s *Service) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListLowStock(ctx)
}

// ListByPriceRange returns products priced within [min, max].
func (s *Service) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]domain.Product, error) {
	return s.repo.ListByPriceRange(ctx, min, max)
}

// CountLowStock counts products below the restock threshold.
func (s *Service) CountLowStock(ctx context.Context) (int64, error) {
	return s.repo.CountLowStock(ctx)
}

// Update applies the non-nil patch fields to an existing product. A changed
// name is re-checked for uniqueness; price and stock are overwritten only
// when provided with an acceptable value.
func (s *Service) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		name := strings.TrimSpace(*patch.Name)
		if name != existing.Name {
			exists, err := s.repo.ExistsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("product name %q: %w", name, domain.ErrAlreadyExists)
			}
		}
		existing.Name = name
	}

	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Price != nil && patch.Price.Sign() > 0 {
		existing.Price = *patch.Price
	}
	if patch.Stock != nil && *patch.Stock >= 0 {
		existing.Stock = *patch.Stock
	}
	if patch.Category != nil {
		existing.Category = *patch.Category
	}

	return s.repo.Update(ctx, *existing)
}

// SetStock overwrites the stock quantity unconditionally. Negative quantities
// are rejected before the product is looked up.
func (s *Service) SetStock(ctx context.Context, id string, quantity int) (*domain.Product, error) {
	if quantity < 0 {
		return nil, domain.Invalid("stock must be zero or greater")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Stock = quantity
	return s.repo.Update(ctx, *existing)
}

// Delete removes the product or returns domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
