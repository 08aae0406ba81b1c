package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Orders move pending → preparing → ready → delivered, or
// are cancelled.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order fulfilment types.
const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

// Order is a customer-facing purchase request (pickup or delivery).
// DeliveredAt is set exactly once, on the transition to delivered, and is
// never cleared by later status changes.
type Order struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customerId"`
	StoreID         int64           `json:"storeId"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	DeliveryAddress *string         `json:"deliveryAddress,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
}

// OrderItem snapshots one line of an order. UnitPrice is the price at order
// time, independent of the current Product.Price.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// OrderItemDetail is an order item with its product joined in.
type OrderItemDetail struct {
	OrderItem
	Product Product `json:"product"`
}

// OrderDetail is the fully joined shape returned by GET /api/orders/:id.
type OrderDetail struct {
	Order
	Customer User              `json:"customer"`
	Store    Store             `json:"store"`
	Items    []OrderItemDetail `json:"items"`
}

// OrderFilters defines the available filters for querying orders.
type OrderFilters struct {
	StoreID    *int64 `form:"storeId"`
	CustomerID *int64 `form:"customerId"`
}
