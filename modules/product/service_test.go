package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStockChecker records the last check and returns a fixed answer.
type stubStockChecker struct {
	inStock      bool
	lastCode     string
	lastQuantity int
}

func (s *stubStockChecker) CheckStock(_ context.Context, productCode string, quantity int) bool {
	s.lastCode = productCode
	s.lastQuantity = quantity
	return s.inStock
}

func setupService(t *testing.T, stock StockChecker) *Service {
	t.Helper()
	return NewService(NewRepository(setupTestDB(t)), stock)
}

func TestService_CreateAndGetByID(t *testing.T) {
	svc := setupService(t, &stubStockChecker{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &Product{
		Name:          "Widget",
		Description:   "A widget",
		Price:         decimal.RequireFromString("19.99"),
		Category:      "tools",
		StockQuantity: 100,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.True(t, found.Price.Equal(created.Price))
}

func TestService_Update_ReplacesAllFields(t *testing.T) {
	svc := setupService(t, &stubStockChecker{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &Product{
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &Product{
		Name:          "Gadget",
		Description:   "replaced",
		Price:         decimal.RequireFromString("29.99"),
		Category:      "electronics",
		StockQuantity: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, "replaced", updated.Description)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("29.99")))
	assert.Equal(t, "electronics", updated.Category)
	assert.Equal(t, 7, updated.StockQuantity)

	_, err = svc.Update(ctx, "non-existent-id", &Product{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc := setupService(t, &stubStockChecker{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &Product{
		Name:  "Widget",
		Price: decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_IsProductInStock(t *testing.T) {
	t.Run("delegates to the checker", func(t *testing.T) {
		stock := &stubStockChecker{inStock: true}
		svc := setupService(t, stock)

		assert.True(t, svc.IsProductInStock(context.Background(), "PROD-001", 3))
		assert.Equal(t, "PROD-001", stock.lastCode)
		assert.Equal(t, 3, stock.lastQuantity)
	})

	t.Run("unknown code reads as out of stock, not as an error", func(t *testing.T) {
		svc := setupService(t, &stubStockChecker{inStock: false})

		assert.False(t, svc.IsProductInStock(context.Background(), "NOPE-999", 1))
	})
}
