package repositories

import (
	"sort"
	"sync"

	"njaboot_connect_backend/internal/models"
)

// StoreRepository defines the interface for store storage operations.
type StoreRepository interface {
	CreateStore(store *models.Store) (*models.Store, error)
	GetStoreByID(id int64) (*models.Store, error)
	GetStores() ([]models.Store, error)
	GetStoresByManager(managerID int64) ([]models.Store, error)
}

type storeRepository struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]models.Store
}

// NewStoreRepository creates a new in-memory StoreRepository.
func NewStoreRepository() StoreRepository {
	return &storeRepository{byID: make(map[int64]models.Store)}
}

func (r *storeRepository) CreateStore(store *models.Store) (*models.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *store
	stored.ID = r.seq
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *storeRepository) GetStoreByID(id int64) (*models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := store
	return &out, nil
}

func (r *storeRepository) GetStores() ([]models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stores := make([]models.Store, 0, len(r.byID))
	for _, s := range r.byID {
		stores = append(stores, s)
	}
	sortStoresByID(stores)
	return stores, nil
}

func (r *storeRepository) GetStoresByManager(managerID int64) ([]models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stores := []models.Store{}
	for _, s := range r.byID {
		if s.ManagerID == managerID {
			stores = append(stores, s)
		}
	}
	sortStoresByID(stores)
	return stores, nil
}

func sortStoresByID(stores []models.Store) {
	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })
}
