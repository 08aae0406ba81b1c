package repositories

import (
	"sort"
	"sync"
	"time"

	"njaboot_connect_backend/internal/models"
)

// PurchasingCenterRepository defines the interface for wholesale supplier
// storage: the centers themselves and their per-product catalog offers.
type PurchasingCenterRepository interface {
	CreateCenter(center *models.PurchasingCenter) (*models.PurchasingCenter, error)
	GetCenters() ([]models.PurchasingCenter, error)
	GetCenterByID(id int64) (*models.PurchasingCenter, error)

	CreateCenterProduct(cp *models.CenterProduct) (*models.CenterProduct, error)
	GetCenterProducts(centerID int64) ([]models.CenterProduct, error)
}

type purchasingCenterRepository struct {
	mu        sync.RWMutex
	seq       int64
	offerSeq  int64
	byID      map[int64]models.PurchasingCenter
	offerByID map[int64]models.CenterProduct
}

// NewPurchasingCenterRepository creates a new in-memory PurchasingCenterRepository.
func NewPurchasingCenterRepository() PurchasingCenterRepository {
	return &purchasingCenterRepository{
		byID:      make(map[int64]models.PurchasingCenter),
		offerByID: make(map[int64]models.CenterProduct),
	}
}

func (r *purchasingCenterRepository) CreateCenter(center *models.PurchasingCenter) (*models.PurchasingCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *center
	stored.ID = r.seq
	stored.Specialties = append([]string(nil), center.Specialties...)
	stored.DeliveryZones = append([]string(nil), center.DeliveryZones...)
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *purchasingCenterRepository) GetCenters() ([]models.PurchasingCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	centers := make([]models.PurchasingCenter, 0, len(r.byID))
	for _, c := range r.byID {
		centers = append(centers, c)
	}
	sort.Slice(centers, func(i, j int) bool { return centers[i].ID < centers[j].ID })
	return centers, nil
}

func (r *purchasingCenterRepository) GetCenterByID(id int64) (*models.PurchasingCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	center, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := center
	return &out, nil
}

func (r *purchasingCenterRepository) CreateCenterProduct(cp *models.CenterProduct) (*models.CenterProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.offerSeq++
	stored := *cp
	stored.ID = r.offerSeq
	r.offerByID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *purchasingCenterRepository) GetCenterProducts(centerID int64) ([]models.CenterProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offers := []models.CenterProduct{}
	for _, cp := range r.offerByID {
		if cp.CenterID == centerID {
			offers = append(offers, cp)
		}
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].ID < offers[j].ID })
	return offers, nil
}

// SupplyOrderRepository defines the interface for supply order and
// supply-order-item storage.
type SupplyOrderRepository interface {
	CreateSupplyOrder(order *models.SupplyOrder) (*models.SupplyOrder, error)
	GetSupplyOrderByID(orderID int64) (*models.SupplyOrder, error)
	GetSupplyOrdersByStore(storeID int64) ([]models.SupplyOrder, error)
	UpdateSupplyOrderStatus(orderID int64, status string, trackingNumber *string, deliveryDate *time.Time) (*models.SupplyOrder, error)

	CreateSupplyOrderItem(item *models.SupplyOrderItem) (*models.SupplyOrderItem, error)
	GetSupplyOrderItems(orderID int64) ([]models.SupplyOrderItem, error)
}

type supplyOrderRepository struct {
	mu      sync.RWMutex
	seq     int64
	itemSeq int64
	byID    map[int64]models.SupplyOrder
	items   map[int64]models.SupplyOrderItem
}

// NewSupplyOrderRepository creates a new in-memory SupplyOrderRepository.
func NewSupplyOrderRepository() SupplyOrderRepository {
	return &supplyOrderRepository{
		byID:  make(map[int64]models.SupplyOrder),
		items: make(map[int64]models.SupplyOrderItem),
	}
}

func (r *supplyOrderRepository) CreateSupplyOrder(order *models.SupplyOrder) (*models.SupplyOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *order
	stored.ID = r.seq
	now := time.Now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *supplyOrderRepository) GetSupplyOrderByID(orderID int64) (*models.SupplyOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	out := order
	return &out, nil
}

func (r *supplyOrderRepository) GetSupplyOrdersByStore(storeID int64) ([]models.SupplyOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []models.SupplyOrder{}
	for _, o := range r.byID {
		if o.StoreID == storeID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// UpdateSupplyOrderStatus sets the status, merges the optional tracking
// number and delivery date when provided, and bumps UpdatedAt.
func (r *supplyOrderRepository) UpdateSupplyOrderStatus(orderID int64, status string, trackingNumber *string, deliveryDate *time.Time) (*models.SupplyOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[orderID]
	if !ok {
		return nil, ErrNotFound
	}

	order.Status = status
	if trackingNumber != nil {
		order.TrackingNumber = trackingNumber
	}
	if deliveryDate != nil {
		order.DeliveryDate = deliveryDate
	}
	order.UpdatedAt = time.Now()
	r.byID[orderID] = order

	out := order
	return &out, nil
}

func (r *supplyOrderRepository) CreateSupplyOrderItem(item *models.SupplyOrderItem) (*models.SupplyOrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.itemSeq++
	stored := *item
	stored.ID = r.itemSeq
	r.items[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *supplyOrderRepository) GetSupplyOrderItems(orderID int64) ([]models.SupplyOrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []models.SupplyOrderItem{}
	for _, it := range r.items {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
