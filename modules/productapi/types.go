package productapi

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest is the payload for creating or replacing a product.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"required,gt=0"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stockQuantity"`
}

// StockStatusResponse is the availability payload, mirroring the
// inventory service's check-stock body.
type StockStatusResponse struct {
	InStock bool `json:"inStock"`
}

// ErrorDetails is the structured error body for non-validation
// failures.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}
