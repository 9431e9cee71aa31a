package product

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
type Product struct {
	ID          string          `gorm:"primarykey;size:36" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:500" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"size:100;index" json:"category"`
	// StockQuantity is informational only. The inventory service owns the
	// authoritative stock figure; the two are never reconciled.
	StockQuantity int `json:"stockQuantity"`
}

// TableName returns the table name for the Product model.
func (Product) TableName() string {
	return "products"
}
