package models

import "github.com/shopspring/decimal"

// LowStockItem is one inventory row at or below its restock threshold,
// reported on the manager dashboard.
type LowStockItem struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	MinStock    int    `json:"minStock"`
}

// DashboardSummary is the computed per-store aggregate behind
// GET /api/analytics/dashboard/:storeId. It is never stored.
type DashboardSummary struct {
	StoreID        int64           `json:"storeId"`
	TodayRevenue   decimal.Decimal `json:"todayRevenue"`
	TotalOrders    int             `json:"totalOrders"`
	ActiveOrders   int             `json:"activeOrders"`
	LowStockCount  int             `json:"lowStockCount"`
	LowStockItems  []LowStockItem  `json:"lowStockItems"`
	TotalCustomers int             `json:"totalCustomers"`
}
