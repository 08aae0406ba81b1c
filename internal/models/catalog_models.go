package models

import "github.com/shopspring/decimal"

// Store represents a single physical retail location managed by one manager user.
type Store struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	ManagerID int64   `json:"managerId" binding:"required"`
	Phone     *string `json:"phone,omitempty"`
	IsActive  bool    `json:"isActive"`
}

// Category is a flat product grouping, no hierarchy.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// Product is a catalog entry. Price is the current list price; orders
// snapshot their own unit prices and are not affected by later changes here.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *int64          `json:"categoryId,omitempty"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	Unit        string          `json:"unit" binding:"required"`
	IsActive    bool            `json:"isActive"`
}

// ProductUpdate carries the fields a PATCH may change. Nil means "keep".
type ProductUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	CategoryID  *int64           `json:"categoryId,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

// ProductFilters defines the available filters for querying products.
type ProductFilters struct {
	CategoryID *int64 `form:"categoryId"`
}
