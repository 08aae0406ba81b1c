package repositories

import (
	"sort"
	"sync"
	"time"

	"njaboot_connect_backend/internal/models"
)

// SaleRepository defines the interface for point-of-sale transaction storage.
type SaleRepository interface {
	CreateSale(sale *models.Sale) (*models.Sale, error)
	GetSalesByStore(storeID int64, start, end *time.Time) ([]models.Sale, error)
}

type saleRepository struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]models.Sale
}

// NewSaleRepository creates a new in-memory SaleRepository.
func NewSaleRepository() SaleRepository {
	return &saleRepository{byID: make(map[int64]models.Sale)}
}

func (r *saleRepository) CreateSale(sale *models.Sale) (*models.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *sale
	stored.ID = r.seq
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.Items = append([]models.SaleItem(nil), sale.Items...)
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

// GetSalesByStore returns the store's sales whose CreatedAt falls within
// [start, end). Either bound may be nil to leave that side open.
func (r *saleRepository) GetSalesByStore(storeID int64, start, end *time.Time) ([]models.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sales := []models.Sale{}
	for _, s := range r.byID {
		if s.StoreID != storeID {
			continue
		}
		if start != nil && s.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && !s.CreatedAt.Before(*end) {
			continue
		}
		sales = append(sales, s)
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].ID < sales[j].ID })
	return sales, nil
}
