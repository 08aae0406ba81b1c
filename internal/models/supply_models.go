package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supply order statuses. Supply orders move pending → confirmed → shipped →
// delivered, or are cancelled.
const (
	SupplyStatusPending   = "pending"
	SupplyStatusConfirmed = "confirmed"
	SupplyStatusShipped   = "shipped"
	SupplyStatusDelivered = "delivered"
	SupplyStatusCancelled = "cancelled"
)

// PurchasingCenter is an upstream wholesale supplier with its own catalog
// and pricing.
type PurchasingCenter struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	City          string   `json:"city" binding:"required"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Specialties   []string `json:"specialties"`
	DeliveryZones []string `json:"deliveryZones"`
	IsActive      bool     `json:"isActive"`
}

// CenterProduct is a purchasing center's catalog offer for one product.
type CenterProduct struct {
	ID               int64           `json:"id"`
	CenterID         int64           `json:"centerId"`
	ProductID        int64           `json:"productId"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	MinOrderQuantity int             `json:"minOrderQuantity"`
	StockQuantity    int             `json:"stockQuantity"`
	DeliveryTime     int             `json:"deliveryTime"` // days
	IsAvailable      bool            `json:"isAvailable"`
}

// CenterProductDetail is a center offer with the product joined in.
type CenterProductDetail struct {
	CenterProduct
	Product Product `json:"product"`
}

// SupplyOrder is a store's wholesale restocking request placed against a
// purchasing center. OrderNumber is generated from the creation timestamp
// plus a random suffix; uniqueness is probabilistic, not enforced.
type SupplyOrder struct {
	ID             int64           `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	StoreID        int64           `json:"storeId"`
	CenterID       int64           `json:"centerId"`
	Status         string          `json:"status"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	DeliveryDate   *time.Time      `json:"deliveryDate,omitempty"`
	TrackingNumber *string         `json:"trackingNumber,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	InvoiceURL     *string         `json:"invoiceUrl,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// SupplyOrderItem is one line of a supply order. TotalPrice is computed as
// Quantity × UnitPrice at creation and never recalculated.
type SupplyOrderItem struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"orderId"`
	ProductID  int64           `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// SupplyOrderDetail is a supply order with its items attached.
type SupplyOrderDetail struct {
	SupplyOrder
	Items []SupplyOrderItem `json:"items"`
}
