package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the point of sale.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodMobile = "mobile"
)

// SaleItem is one line of an in-person sale, embedded in the Sale record
// rather than stored as its own entity.
type SaleItem struct {
	ProductID int64           `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Sale is a manager-facing point-of-sale transaction, distinct from a
// customer Order.
type Sale struct {
	ID            int64           `json:"id"`
	StoreID       int64           `json:"storeId"`
	ManagerID     int64           `json:"managerId"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []SaleItem      `json:"items"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SaleFilters bounds a sales query to an inclusive date range.
// Dates are YYYY-MM-DD in the store's local time.
type SaleFilters struct {
	StartDate *string `form:"startDate"`
	EndDate   *string `form:"endDate"`
}
