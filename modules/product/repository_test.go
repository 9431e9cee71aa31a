package product

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&Product{}), "failed to migrate test database")

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, category, price string) *Product {
	t.Helper()

	p := &Product{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   "test product",
		Price:         decimal.RequireFromString(price),
		Category:      category,
		StockQuantity: 10,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	p := &Product{
		ID:            uuid.New().String(),
		Name:          "Widget",
		Description:   "A widget",
		Price:         decimal.RequireFromString("19.99"),
		Category:      "tools",
		StockQuantity: 100,
	}
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, found.Name)
	assert.True(t, found.Price.Equal(p.Price), "expected price %s, got %s", p.Price, found.Price)
	assert.Equal(t, p.Category, found.Category)
	assert.Equal(t, p.StockQuantity, found.StockQuantity)
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	seedProduct(t, db, "Widget", "tools", "19.99")
	seedProduct(t, db, "Gadget", "tools", "29.99")

	products, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestRepository_FindByCategory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Widget", "tools", "19.99")
	seedProduct(t, db, "Novel", "books", "9.99")

	products, err := repo.FindByCategory(ctx, "books")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Novel", products[0].Name)

	products, err = repo.FindByCategory(ctx, "garden")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRepository_FindByPriceLessThan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Cheap", "misc", "5.00")
	seedProduct(t, db, "Exact", "misc", "10.00")
	seedProduct(t, db, "Pricey", "misc", "99.99")

	products, err := repo.FindByPriceLessThan(ctx, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	require.Len(t, products, 1, "comparison is strict")
	assert.Equal(t, "Cheap", products[0].Name)
}

func TestRepository_SearchByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Steel Hammer", "tools", "19.99")
	seedProduct(t, db, "hammock", "garden", "49.99")
	seedProduct(t, db, "Screwdriver", "tools", "9.99")

	products, err := repo.SearchByName(ctx, "HAMM")
	require.NoError(t, err)
	assert.Len(t, products, 2, "match is case-insensitive substring")

	products, err = repo.SearchByName(ctx, "drill")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRepository_SaveAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "Widget", "tools", "19.99")

	p.Name = "Widget v2"
	p.Price = decimal.RequireFromString("24.99")
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("24.99")))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrNotFound)
}
