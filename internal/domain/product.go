package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product counts as low stock.
const LowStockThreshold = 10

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// LowStock reports whether the product is below the restock threshold.
func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// ProductPatch carries a partial update. Nil fields are left unchanged.
type ProductPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
}
