package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"njaboot_connect_backend/internal/models"
)

// InventoryRepository defines the interface for inventory storage operations.
// Rows are keyed by the (productID, storeID) pair; at most one row exists
// per pair, and quantity updates do not upsert.
type InventoryRepository interface {
	CreateInventoryItem(item *models.Inventory) (*models.Inventory, error)
	GetInventoryByStore(storeID int64) ([]models.Inventory, error)
	GetInventoryItem(productID, storeID int64) (*models.Inventory, error)
	UpdateInventory(productID, storeID int64, quantity int) (*models.Inventory, error)
	GetStoreIDsWithProduct(productID int64) ([]int64, error)
}

type inventoryRepository struct {
	mu     sync.RWMutex
	seq    int64
	byID   map[int64]models.Inventory
	byPair map[string]int64
}

// NewInventoryRepository creates a new in-memory InventoryRepository.
func NewInventoryRepository() InventoryRepository {
	return &inventoryRepository{
		byID:   make(map[int64]models.Inventory),
		byPair: make(map[string]int64),
	}
}

func pairKey(productID, storeID int64) string {
	return fmt.Sprintf("%d-%d", productID, storeID)
}

func (r *inventoryRepository) CreateInventoryItem(item *models.Inventory) (*models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey(item.ProductID, item.StoreID)
	if _, exists := r.byPair[key]; exists {
		return nil, ErrDuplicateKey
	}

	r.seq++
	stored := *item
	stored.ID = r.seq
	stored.LastUpdated = time.Now()
	r.byID[stored.ID] = stored
	r.byPair[key] = stored.ID

	out := stored
	return &out, nil
}

func (r *inventoryRepository) GetInventoryByStore(storeID int64) ([]models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := []models.Inventory{}
	for _, inv := range r.byID {
		if inv.StoreID == storeID {
			rows = append(rows, inv)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (r *inventoryRepository) GetInventoryItem(productID, storeID int64) (*models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPair[pairKey(productID, storeID)]
	if !ok {
		return nil, ErrNotFound
	}
	inv := r.byID[id]
	out := inv
	return &out, nil
}

// UpdateInventory sets the quantity for an existing (product, store) row.
// It is not an upsert: callers must create the row first.
func (r *inventoryRepository) UpdateInventory(productID, storeID int64, quantity int) (*models.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byPair[pairKey(productID, storeID)]
	if !ok {
		return nil, ErrNotFound
	}

	inv := r.byID[id]
	inv.Quantity = quantity
	inv.LastUpdated = time.Now()
	r.byID[id] = inv

	out := inv
	return &out, nil
}

// GetStoreIDsWithProduct scans all inventory rows and returns the distinct
// stores holding a positive quantity of the product.
func (r *inventoryRepository) GetStoreIDsWithProduct(productID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[int64]bool{}
	ids := []int64{}
	for _, inv := range r.byID {
		if inv.ProductID == productID && inv.Quantity > 0 && !seen[inv.StoreID] {
			seen[inv.StoreID] = true
			ids = append(ids, inv.StoreID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
