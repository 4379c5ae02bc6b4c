package account

import (
	"context"

	"storecrm/internal/domain"
)

// Repository persists and fetches login accounts.
type Repository interface {
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}
