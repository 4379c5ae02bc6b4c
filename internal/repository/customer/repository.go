package customer

import (
	"context"
	"time"

	"storecrm/internal/domain"
)

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
	List(ctx context.Context) ([]domain.Customer, error)
	SearchByName(ctx context.Context, name string) ([]domain.Customer, error)
	SearchByPhone(ctx context.Context, phone string) ([]domain.Customer, error)
	ListRegisteredBetween(ctx context.Context, start, end time.Time) ([]domain.Customer, error)
	CountRegisteredToday(ctx context.Context) (int64, error)
}
