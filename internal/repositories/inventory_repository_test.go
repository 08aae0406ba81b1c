package repositories

import (
	"testing"

	"njaboot_connect_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInventoryItemRejectsDuplicatePair(t *testing.T) {
	repo := NewInventoryRepository()

	_, err := repo.CreateInventoryItem(&models.Inventory{ProductID: 1, StoreID: 2, Quantity: 10, MinStock: 3})
	require.NoError(t, err)

	_, err = repo.CreateInventoryItem(&models.Inventory{ProductID: 1, StoreID: 2, Quantity: 99})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// the same product in another store is a distinct pair
	_, err = repo.CreateInventoryItem(&models.Inventory{ProductID: 1, StoreID: 3, Quantity: 5})
	assert.NoError(t, err)
}

func TestUpdateInventoryDoesNotUpsert(t *testing.T) {
	repo := NewInventoryRepository()

	_, err := repo.UpdateInventory(1, 2, 50)
	assert.ErrorIs(t, err, ErrNotFound)

	// the failed update must not have created a row
	_, err = repo.GetInventoryItem(1, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	rows, err := repo.GetInventoryByStore(2)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateInventorySetsQuantityAndTimestamp(t *testing.T) {
	repo := NewInventoryRepository()

	created, err := repo.CreateInventoryItem(&models.Inventory{ProductID: 1, StoreID: 2, Quantity: 10, MinStock: 3})
	require.NoError(t, err)

	updated, err := repo.UpdateInventory(1, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 4, updated.Quantity)
	assert.Equal(t, 3, updated.MinStock)
	assert.False(t, updated.LastUpdated.Before(created.LastUpdated))
}

func TestGetStoreIDsWithProductSkipsEmptyStock(t *testing.T) {
	repo := NewInventoryRepository()

	_, err := repo.CreateInventoryItem(&models.Inventory{ProductID: 1, StoreID: 10, Quantity: 5})
	require.NoError(t, err)
	_, err = repo.CreateInventoryItem(&models.Inventory{ProductID: 1, StoreID: 11, Quantity: 0})
	require.NoError(t, err)
	_, err = repo.CreateInventoryItem(&models.Inventory{ProductID: 2, StoreID: 12, Quantity: 7})
	require.NoError(t, err)

	storeIDs, err := repo.GetStoreIDsWithProduct(1)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, storeIDs)
}
