package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockChecker is the outbound port to the inventory service. Any
// implementation must answer false when availability cannot be
// determined; callers never see an error.
type StockChecker interface {
	CheckStock(ctx context.Context, productCode string, quantity int) bool
}

// Service implements the product domain logic on top of the repository.
type Service struct {
	repo  *Repository
	stock StockChecker
}

// NewService creates a new product service.
func NewService(repo *Repository, stock StockChecker) *Service {
	return &Service{repo: repo, stock: stock}
}

// GetAll returns all products.
func (s *Service) GetAll(ctx context.Context) ([]*Product, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns the product with the given ID, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new product and assigns its ID.
func (s *Service) Create(ctx context.Context, product *Product) (*Product, error) {
	product.ID = uuid.New().String()
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces every mutable field of an existing product.
// Returns ErrNotFound when no product has the given ID.
func (s *Service) Update(ctx context.Context, id string, details *Product) (*Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = details.Name
	product.Description = details.Description
	product.Price = details.Price
	product.Category = details.Category
	product.StockQuantity = details.StockQuantity

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by ID. Returns ErrNotFound when absent.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// GetByCategory returns all products with an exact category match.
func (s *Service) GetByCategory(ctx context.Context, category string) ([]*Product, error) {
	return s.repo.FindByCategory(ctx, category)
}

// GetWithPriceLessThan returns all products strictly cheaper than max.
func (s *Service) GetWithPriceLessThan(ctx context.Context, max decimal.Decimal) ([]*Product, error) {
	return s.repo.FindByPriceLessThan(ctx, max)
}

// SearchByName returns all products whose name contains the substring,
// ignoring case.
func (s *Service) SearchByName(ctx context.Context, name string) ([]*Product, error) {
	return s.repo.SearchByName(ctx, name)
}

// IsProductInStock asks the inventory service whether enough units of
// the given product code exist. Unavailability of the inventory service
// reads as out of stock.
func (s *Service) IsProductInStock(ctx context.Context, productCode string, quantity int) bool {
	return s.stock.CheckStock(ctx, productCode, quantity)
}
