package inventory

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an inventory item is not found.
var ErrNotFound = errors.New("inventory item not found")

// ErrQuantityBelowZero is returned when a quantity adjustment would
// drive the stored count negative.
var ErrQuantityBelowZero = errors.New("cannot reduce quantity below zero")

// Repository provides access to inventory storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new inventory repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new inventory item to the database.
func (r *Repository) Create(ctx context.Context, item *InventoryItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

// FindByID retrieves an inventory item by its ID.
func (r *Repository) FindByID(ctx context.Context, id string) (*InventoryItem, error) {
	var item InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}
	return &item, nil
}

// FindAll retrieves all inventory items.
func (r *Repository) FindAll(ctx context.Context) ([]*InventoryItem, error) {
	items := make([]*InventoryItem, 0)
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find inventory items: %w", err)
	}
	return items, nil
}

// FindByProductCode retrieves the first inventory item with the given
// product code. The column is not unique; with duplicates the pick is
// whatever the store returns first.
func (r *Repository) FindByProductCode(ctx context.Context, productCode string) (*InventoryItem, error) {
	var item InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "product_code = ?", productCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by product code: %w", err)
	}
	return &item, nil
}

// FindByProductID retrieves all inventory items referencing the given
// product.
func (r *Repository) FindByProductID(ctx context.Context, productID string) ([]*InventoryItem, error) {
	items := make([]*InventoryItem, 0)
	if err := r.db.WithContext(ctx).Find(&items, "product_id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("failed to find inventory items by product id: %w", err)
	}
	return items, nil
}

// FindByQuantityLessThan retrieves all items with quantity strictly
// below the threshold, in store-native order.
func (r *Repository) FindByQuantityLessThan(ctx context.Context, threshold int) ([]*InventoryItem, error) {
	items := make([]*InventoryItem, 0)
	if err := r.db.WithContext(ctx).Find(&items, "quantity < ?", threshold).Error; err != nil {
		return nil, fmt.Errorf("failed to find low stock items: %w", err)
	}
	return items, nil
}

// Save persists every field of an existing inventory item.
func (r *Repository) Save(ctx context.Context, item *InventoryItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}
	return nil
}

// Delete removes an inventory item by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&InventoryItem{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustQuantity applies a signed delta to the item matching
// productCode. The read, the non-negativity check and the write run in
// one transaction, so a rejected adjustment leaves the stored quantity
// untouched. Returns ErrNotFound when no item matches and
// ErrQuantityBelowZero when the result would be negative.
func (r *Repository) AdjustQuantity(ctx context.Context, productCode string, delta int) (*InventoryItem, error) {
	var item InventoryItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "product_code = ?", productCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to find inventory item by product code: %w", err)
		}

		newQuantity := item.Quantity + delta
		if newQuantity < 0 {
			return ErrQuantityBelowZero
		}

		if err := tx.Model(&item).Update("quantity", newQuantity).Error; err != nil {
			return fmt.Errorf("failed to update quantity: %w", err)
		}
		item.Quantity = newQuantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
