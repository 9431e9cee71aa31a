package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
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
	require.NoError(t, db.AutoMigrate(&InventoryItem{}), "failed to migrate test database")

	return db
}

func seedItem(t *testing.T, db *gorm.DB, productCode string, quantity int) *InventoryItem {
	t.Helper()

	item := &InventoryItem{
		ID:                uuid.New().String(),
		ProductCode:       productCode,
		Quantity:          quantity,
		WarehouseLocation: "A-01",
		ProductID:         uuid.New().String(),
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	item := &InventoryItem{
		ID:                uuid.New().String(),
		ProductCode:       "PROD-001",
		Quantity:          10,
		WarehouseLocation: "B-12",
		ProductID:         uuid.New().String(),
	}
	require.NoError(t, repo.Create(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, found)
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_FindByProductCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedItem(t, db, "PROD-001", 10)

	t.Run("existing code", func(t *testing.T) {
		found, err := repo.FindByProductCode(ctx, "PROD-001")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, found.ID)
		assert.Equal(t, 10, found.Quantity)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := repo.FindByProductCode(ctx, "NOPE-999")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_FindByProductID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seeded := seedItem(t, db, "PROD-001", 10)
	seedItem(t, db, "PROD-002", 4)

	items, err := repo.FindByProductID(ctx, seeded.ProductID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, seeded.ID, items[0].ID)

	items, err = repo.FindByProductID(ctx, "unknown-product")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepository_FindByQuantityLessThan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedItem(t, db, "PROD-001", 2)
	seedItem(t, db, "PROD-002", 5)
	seedItem(t, db, "PROD-003", 9)

	t.Run("strict threshold", func(t *testing.T) {
		items, err := repo.FindByQuantityLessThan(ctx, 5)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "PROD-001", items[0].ProductCode)
	})

	t.Run("zero threshold matches nothing", func(t *testing.T) {
		items, err := repo.FindByQuantityLessThan(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	item := seedItem(t, db, "PROD-001", 10)
	item.ProductCode = "PROD-001-B"
	item.WarehouseLocation = "C-03"
	require.NoError(t, repo.Save(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001-B", found.ProductCode)
	assert.Equal(t, "C-03", found.WarehouseLocation)
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	item := seedItem(t, db, "PROD-001", 10)

	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, item.ID), ErrNotFound)
}

func TestRepository_AdjustQuantity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedItem(t, db, "PROD-001", 10)

	t.Run("positive delta", func(t *testing.T) {
		item, err := repo.AdjustQuantity(ctx, "PROD-001", 5)
		require.NoError(t, err)
		assert.Equal(t, 15, item.Quantity)
	})

	t.Run("negative delta within bounds", func(t *testing.T) {
		item, err := repo.AdjustQuantity(ctx, "PROD-001", -15)
		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity)
	})

	t.Run("delta below zero is rejected without a write", func(t *testing.T) {
		_, err := repo.AdjustQuantity(ctx, "PROD-001", -1)
		assert.ErrorIs(t, err, ErrQuantityBelowZero)

		found, err := repo.FindByProductCode(ctx, "PROD-001")
		require.NoError(t, err)
		assert.Equal(t, 0, found.Quantity)
	})

	t.Run("unknown product code", func(t *testing.T) {
		_, err := repo.AdjustQuantity(ctx, "NOPE-999", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
