package stats

import (
	"context"
	"time"

	"storecrm/internal/domain"
)

type customerReader interface {
	List(ctx context.Context) ([]domain.Customer, error)
	CountRegisteredToday(ctx context.Context) (int64, error)
}

type productReader interface {
	List(ctx context.Context) ([]domain.Product, error)
	CountLowStock(ctx context.Context) (int64, error)
}

// Service composes read-side counts from the customer and product services.
// It holds no state and recomputes on every call.
type Service struct {
	customers customerReader
	products  productReader
}

func New(customers customerReader, products productReader) *Service {
	return &Service{customers: customers, products: products}
}

// CustomerStats groups customer counts for the dashboard.
type CustomerStats struct {
	Total           int64 `json:"total"`
	RegisteredToday int64 `json:"registeredToday"`
}

// ProductStats groups product counts for the dashboard.
type ProductStats struct {
	Total    int64 `json:"total"`
	LowStock int64 `json:"lowStock"`
}

// Dashboard is the full statistics report.
type Dashboard struct {
	Customers   CustomerStats `json:"customers"`
	Products    ProductStats  `json:"products"`
	GeneratedAt time.Time     `json:"timestamp"`
}

// Summary is the flat variant of the same counts.
type Summary struct {
	TotalCustomers           int64 `json:"totalCustomers"`
	TotalProducts            int64 `json:"totalProducts"`
	LowStockProducts         int64 `json:"lowStockProducts"`
	CustomersRegisteredToday int64 `json:"customersRegisteredToday"`
}

// Dashboard gathers all counts plus a generation timestamp.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	sum, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Customers: CustomerStats{
			Total:           sum.TotalCustomers,
			RegisteredToday: sum.CustomersRegisteredToday,
		},
		Products: ProductStats{
			Total:    sum.TotalProducts,
			LowStock: sum.LowStockProducts,
		},
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Summary gathers the four counts without the timestamp envelope.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	return s.collect(ctx)
}

func (s *Service) collect(ctx context.Context) (*Summary, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	registeredToday, err := s.customers.CountRegisteredToday(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.products.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalCustomers:           int64(len(customers)),
		TotalProducts:            int64(len(products)),
		LowStockProducts:         lowStock,
		CustomersRegisteredToday: registeredToday,
	}, nil
}
