package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// DefaultStockThreshold is the low-stock threshold applied when the
// caller does not supply one.
const DefaultStockThreshold = 5

// Service implements the inventory domain logic on top of the
// repository.
type Service struct {
	repo *Repository
}

// NewService creates a new inventory service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GetAll returns all inventory items.
func (s *Service) GetAll(ctx context.Context) ([]*InventoryItem, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns the item with the given ID, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*InventoryItem, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByProductCode returns the first item matching the product code, or
// ErrNotFound. Missing records fail loud here; IsInStock folds them into
// false instead.
func (s *Service) GetByProductCode(ctx context.Context, productCode string) (*InventoryItem, error) {
	return s.repo.FindByProductCode(ctx, productCode)
}

// GetByProductID returns all items referencing the given product.
func (s *Service) GetByProductID(ctx context.Context, productID string) ([]*InventoryItem, error) {
	return s.repo.FindByProductID(ctx, productID)
}

// Create stores a new inventory item and assigns its ID.
func (s *Service) Create(ctx context.Context, item *InventoryItem) (*InventoryItem, error) {
	item.ID = uuid.New().String()
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces every mutable field of an existing item. Returns
// ErrNotFound when no item has the given ID.
func (s *Service) Update(ctx context.Context, id string, details *InventoryItem) (*InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.ProductCode = details.ProductCode
	item.Quantity = details.Quantity
	item.WarehouseLocation = details.WarehouseLocation
	item.ProductID = details.ProductID

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an inventory item by ID. Returns ErrNotFound when
// absent.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AdjustQuantity applies a signed delta to the item matching
// productCode and returns the updated item. A delta that would drive
// the quantity negative is rejected with ErrQuantityBelowZero and
// leaves the stored item unchanged.
func (s *Service) AdjustQuantity(ctx context.Context, productCode string, delta int) (*InventoryItem, error) {
	return s.repo.AdjustQuantity(ctx, productCode, delta)
}

// IsInStock reports whether an item with the given product code exists
// with at least requiredQuantity units. A missing record is not an
// error; it reads as out of stock.
func (s *Service) IsInStock(ctx context.Context, productCode string, requiredQuantity int) (bool, error) {
	item, err := s.repo.FindByProductCode(ctx, productCode)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return item.Quantity >= requiredQuantity, nil
}

// LowStock returns all items with quantity strictly below the
// threshold.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]*InventoryItem, error) {
	return s.repo.FindByQuantityLessThan(ctx, threshold)
}
