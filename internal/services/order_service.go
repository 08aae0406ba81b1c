package services

import (
	"errors"
	"fmt"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidOrderType        = errors.New("invalid order type")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrDeliveryAddressRequired = errors.New("delivery address is required for delivery orders")
	ErrOrderHasNoItems         = errors.New("order must contain at least one item")
)

// --- Data Transfer Objects (DTOs) ---

// CreateOrderItemRequest is used for creating individual order items.
// UnitPrice is the snapshot stored with the item; when omitted, the
// product's current list price is captured instead.
type CreateOrderItemRequest struct {
	ProductID int64           `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest is used for creating a new order.
type CreateOrderRequest struct {
	CustomerID      int64                    `json:"customerId" binding:"required"`
	StoreID         int64                    `json:"storeId" binding:"required"`
	Status          string                   `json:"status"`
	Type            string                   `json:"type" binding:"required,oneof=pickup delivery"`
	TotalAmount     decimal.Decimal          `json:"totalAmount"`
	DeliveryAddress *string                  `json:"deliveryAddress"`
	Notes           *string                  `json:"notes"`
	Items           []CreateOrderItemRequest `json:"items" binding:"required,dive"`
}

// UpdateOrderStatusRequest is used for updating the status of an order.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- OrderService Interface ---
type OrderService interface {
	CreateOrder(req CreateOrderRequest) (*models.OrderDetail, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, error)
	GetOrderByID(orderID int64) (*models.OrderDetail, error)
	UpdateOrderStatus(orderID int64, req UpdateOrderStatusRequest) (*models.Order, error)
}

type orderService struct {
	orderRepo   repositories.OrderRepository
	userRepo    repositories.UserRepository
	storeRepo   repositories.StoreRepository
	productRepo repositories.ProductRepository
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	storeRepo repositories.StoreRepository,
	productRepo repositories.ProductRepository,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		storeRepo:   storeRepo,
		productRepo: productRepo,
	}
}

// CreateOrder writes the order row, then each item, as sequential
// independent storage calls. There is no rollback: a failure partway
// through leaves the order without its full item set. This matches the
// source system's observed (non-transactional) behavior.
func (s *orderService) CreateOrder(req CreateOrderRequest) (*models.OrderDetail, error) {
	if len(req.Items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !isValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, status)
	}
	if req.Type == models.OrderTypeDelivery && (req.DeliveryAddress == nil || *req.DeliveryAddress == "") {
		return nil, ErrDeliveryAddressRequired
	}

	if _, err := s.userRepo.GetUserByID(req.CustomerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to resolve customer %d: %w", req.CustomerID, err)
	}
	if _, err := s.storeRepo.GetStoreByID(req.StoreID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", req.StoreID, err)
	}

	// Resolve unit-price snapshots before any write so a bad product id
	// fails the request cleanly instead of mid-sequence.
	itemsToCreate := make([]models.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		unitPrice := itemReq.UnitPrice
		if unitPrice.IsZero() {
			product, err := s.productRepo.GetProductByID(itemReq.ProductID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, itemReq.ProductID)
				}
				return nil, fmt.Errorf("failed to resolve product %d: %w", itemReq.ProductID, err)
			}
			unitPrice = product.Price
		}
		itemsToCreate = append(itemsToCreate, models.OrderItem{
			ProductID: itemReq.ProductID,
			Quantity:  itemReq.Quantity,
			UnitPrice: unitPrice,
		})
	}

	totalAmount := req.TotalAmount
	if totalAmount.IsZero() {
		for _, it := range itemsToCreate {
			totalAmount = totalAmount.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	order := models.Order{
		CustomerID:      req.CustomerID,
		StoreID:         req.StoreID,
		Status:          status,
		Type:            req.Type,
		TotalAmount:     totalAmount,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}
	created, err := s.orderRepo.CreateOrder(&order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order record: %w", err)
	}

	for _, item := range itemsToCreate {
		item.OrderID = created.ID
		if _, err := s.orderRepo.CreateOrderItem(&item); err != nil {
			return nil, fmt.Errorf("failed to create order item (productId: %d): %w", item.ProductID, err)
		}
	}

	return s.GetOrderByID(created.ID)
}

func (s *orderService) GetOrders(filters models.OrderFilters) ([]models.Order, error) {
	orders, err := s.orderRepo.GetOrders(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// GetOrderByID returns the order with customer, store, and items (each with
// product detail) joined in. A dangling reference to any of those entities
// makes the whole lookup report not-found.
func (s *orderService) GetOrderByID(orderID int64) (*models.OrderDetail, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}

	customer, err := s.userRepo.GetUserByID(order.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to resolve customer for order %d: %w", orderID, err)
	}
	store, err := s.storeRepo.GetStoreByID(order.StoreID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to resolve store for order %d: %w", orderID, err)
	}

	items, err := s.orderRepo.GetOrderItemsByOrderID(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items for order %d: %w", orderID, err)
	}

	itemDetails := make([]models.OrderItemDetail, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetProductByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrOrderNotFound
			}
			return nil, fmt.Errorf("failed to resolve product %d for order %d: %w", item.ProductID, orderID, err)
		}
		itemDetails = append(itemDetails, models.OrderItemDetail{OrderItem: item, Product: *product})
	}

	return &models.OrderDetail{
		Order:    *order,
		Customer: customer.Sanitized(),
		Store:    *store,
		Items:    itemDetails,
	}, nil
}

func (s *orderService) UpdateOrderStatus(orderID int64, req UpdateOrderStatusRequest) (*models.Order, error) {
	if !isValidOrderStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderStatus, req.Status)
	}

	updated, err := s.orderRepo.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return updated, nil
}

func isValidOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusPreparing, models.OrderStatusReady,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	default:
		return false
	}
}
