package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a product is not found.
var ErrNotFound = errors.New("product not found")

// Repository provides access to product storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new product to the database.
func (r *Repository) Create(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID.
func (r *Repository) FindByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all products.
func (r *Repository) FindAll(ctx context.Context) ([]*Product, error) {
	products := make([]*Product, 0)
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// FindByCategory retrieves all products in the given category.
func (r *Repository) FindByCategory(ctx context.Context, category string) ([]*Product, error) {
	products := make([]*Product, 0)
	if err := r.db.WithContext(ctx).Find(&products, "category = ?", category).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by category: %w", err)
	}
	return products, nil
}

// FindByPriceLessThan retrieves all products strictly cheaper than max.
func (r *Repository) FindByPriceLessThan(ctx context.Context, max decimal.Decimal) ([]*Product, error) {
	products := make([]*Product, 0)
	if err := r.db.WithContext(ctx).Find(&products, "price < ?", max).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by price: %w", err)
	}
	return products, nil
}

// SearchByName retrieves all products whose name contains the given
// substring, case-insensitively.
func (r *Repository) SearchByName(ctx context.Context, name string) ([]*Product, error) {
	products := make([]*Product, 0)
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.WithContext(ctx).Find(&products, "LOWER(name) LIKE ?", pattern).Error; err != nil {
		return nil, fmt.Errorf("failed to search products by name: %w", err)
	}
	return products, nil
}

// Save persists every field of an existing product.
func (r *Repository) Save(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
