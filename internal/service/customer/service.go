package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storecrm/internal/domain"
	custrepo "storecrm/internal/repository/customer"
)

// Service validates and orchestrates customer CRUD.
type Service struct {
	repo custrepo.Repository
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures fields accepted when registering a customer.
type CreateInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birthDate"`
}

// Create validates the input, enforces email/CPF uniqueness and persists the
// customer. The returned record carries the server-assigned id and
// registration timestamp.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("customer name is required")
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, domain.Invalid("customer email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, domain.Invalid("invalid email")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email %s: %w", email, domain.ErrAlreadyExists)
	}

	cpf := strings.TrimSpace(in.CPF)
	if cpf != "" {
		exists, err := s.repo.ExistsByCPF(ctx, cpf)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("cpf: %w", domain.ErrAlreadyExists)
		}
	}

	return s.repo.Create(ctx, domain.Customer{
		Name:      name,
		Email:     email,
		Phone:     in.Phone,
		Address:   in.Address,
		CPF:       cpf,
		BirthDate: in.BirthDate,
	})
}

// Get returns the customer or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByEmail returns the customer or domain.ErrNotFound.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetByCPF returns the customer or domain.ErrNotFound.
func (s *Service) GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error) {
	return s.repo.GetByCPF(ctx, cpf)
}

// List returns all customers.
func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// SearchByName matches customers whose name contains the text, case-insensitive.
func (s *Service) SearchByName(ctx context.Context, name string) ([]domain.Customer, error) {
	return s.repo.SearchByName(ctx, name)
}

// SearchByPhone matches customers whose phone contains the text.
func (s *Service) SearchByPhone(ctx context.Context, phone string) ([]domain.Customer, error) {
	return s.repo.SearchByPhone(ctx, phone)
}

// ListRegisteredBetween returns customers registered within [start, end].
func (s *Service) ListRegisteredBetween(ctx context.Context, start, end time.Time) ([]domain.Customer, error) {
	return s.repo.ListRegisteredBetween(ctx, start, end)
}

// CountRegisteredToday counts customers whose registration date is the
// store's current calendar day.
func (s *Service) CountRegisteredToday(ctx context.Context) (int64, error) {
	return s.repo.CountRegisteredToday(ctx)
}

// Update applies the non-nil patch fields to an existing customer. Email and
// CPF uniqueness are re-checked only when the new value differs from the
// stored one, so a record is never compared against itself.
func (s *Service) Update(ctx context.Context, id string, patch domain.CustomerPatch) (*domain.Customer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		existing.Name = strings.TrimSpace(*patch.Name)
	}

	if patch.Email != nil && strings.TrimSpace(*patch.Email) != "" {
		email := strings.TrimSpace(strings.ToLower(*patch.Email))
		if !strings.Contains(email, "@") {
			return nil, domain.Invalid("invalid email")
		}
		if email != existing.Email {
			exists, err := s.repo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("email %s: %w", email, domain.ErrAlreadyExists)
			}
		}
		existing.Email = email
	}

	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}
	if patch.Address != nil {
		existing.Address = *patch.Address
	}

	if patch.CPF != nil && strings.TrimSpace(*patch.CPF) != "" {
		cpf := strings.TrimSpace(*patch.CPF)
		if cpf != existing.CPF {
			exists, err := s.repo.ExistsByCPF(ctx, cpf)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, fmt.Errorf("cpf: %w", domain.ErrAlreadyExists)
			}
		}
		existing.CPF = cpf
	}

	if patch.BirthDate != nil {
		existing.BirthDate = *patch.BirthDate
	}

	return s.repo.Update(ctx, *existing)
}

// Delete removes the customer or returns domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
