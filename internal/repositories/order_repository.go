package repositories

import (
	"sort"
	"sync"
	"time"

	"njaboot_connect_backend/internal/models"
)

// OrderRepository defines the interface for order and order-item storage
// operations.
type OrderRepository interface {
	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, error)
	UpdateOrderStatus(orderID int64, status string) (*models.Order, error)

	CreateOrderItem(item *models.OrderItem) (*models.OrderItem, error)
	GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error)
}

type orderRepository struct {
	mu      sync.RWMutex
	seq     int64
	itemSeq int64
	byID    map[int64]models.Order
	items   map[int64]models.OrderItem
}

// NewOrderRepository creates a new in-memory OrderRepository.
func NewOrderRepository() OrderRepository {
	return &orderRepository{
		byID:  make(map[int64]models.Order),
		items: make(map[int64]models.OrderItem),
	}
}

func (r *orderRepository) CreateOrder(order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *order
	stored.ID = r.seq
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.byID[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	out := order
	return &out, nil
}

func (r *orderRepository) GetOrders(filters models.OrderFilters) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range r.byID {
		if filters.StoreID != nil && o.StoreID != *filters.StoreID {
			continue
		}
		if filters.CustomerID != nil && o.CustomerID != *filters.CustomerID {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// UpdateOrderStatus sets the status and, if and only if the new status is
// delivered, stamps DeliveredAt. The timestamp is one-way: a later change
// away from delivered does not clear it.
func (r *orderRepository) UpdateOrderStatus(orderID int64, status string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.byID[orderID]
	if !ok {
		return nil, ErrNotFound
	}

	order.Status = status
	if status == models.OrderStatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}
	r.byID[orderID] = order

	out := order
	return &out, nil
}

func (r *orderRepository) CreateOrderItem(item *models.OrderItem) (*models.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.itemSeq++
	stored := *item
	stored.ID = r.itemSeq
	r.items[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *orderRepository) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []models.OrderItem{}
	for _, it := range r.items {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
