package models

import "time"

// Inventory is the stock-on-hand record for one (product, store) pair.
// At most one row exists per pair.
type Inventory struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"productId" binding:"required"`
	StoreID     int64     `json:"storeId" binding:"required"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"minStock"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// InventoryDetail is an inventory row with its product joined in, the shape
// the store management screens consume.
type InventoryDetail struct {
	Inventory
	Product Product `json:"product"`
}
