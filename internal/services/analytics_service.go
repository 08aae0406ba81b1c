package services

import (
	"errors"
	"fmt"
	"time"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// dashboardTotalCustomers is the fixed total-customers figure carried over
// from the source system's dashboard. The UI displays it as-is; it is not
// derived from the user store.
const dashboardTotalCustomers = 156

// --- AnalyticsService Interface ---
type AnalyticsService interface {
	GetDashboardSummary(storeID int64) (*models.DashboardSummary, error)
}

type analyticsService struct {
	storeRepo     repositories.StoreRepository
	saleRepo      repositories.SaleRepository
	orderRepo     repositories.OrderRepository
	inventoryRepo repositories.InventoryRepository
	productRepo   repositories.ProductRepository
}

// NewAnalyticsService creates a new instance of AnalyticsService.
func NewAnalyticsService(
	storeRepo repositories.StoreRepository,
	saleRepo repositories.SaleRepository,
	orderRepo repositories.OrderRepository,
	inventoryRepo repositories.InventoryRepository,
	productRepo repositories.ProductRepository,
) AnalyticsService {
	return &analyticsService{
		storeRepo:     storeRepo,
		saleRepo:      saleRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

// GetDashboardSummary aggregates, per store: today's revenue (sales created
// within the current local calendar day), total and active (pending or
// preparing) order counts, and low-stock inventory rows (quantity at or
// below the restock threshold). Nothing here is stored; it is computed on
// every request.
func (s *analyticsService) GetDashboardSummary(storeID int64) (*models.DashboardSummary, error) {
	if _, err := s.storeRepo.GetStoreByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", storeID, err)
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	sales, err := s.saleRepo.GetSalesByStore(storeID, &dayStart, &dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's sales: %w", err)
	}
	todayRevenue := decimal.Zero
	for _, sale := range sales {
		todayRevenue = todayRevenue.Add(sale.TotalAmount)
	}

	orders, err := s.orderRepo.GetOrders(models.OrderFilters{StoreID: &storeID})
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	activeOrders := 0
	for _, o := range orders {
		if o.Status == models.OrderStatusPending || o.Status == models.OrderStatusPreparing {
			activeOrders++
		}
	}

	inventory, err := s.inventoryRepo.GetInventoryByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	lowStock := []models.LowStockItem{}
	for _, row := range inventory {
		if row.Quantity > row.MinStock {
			continue
		}
		name := ""
		if product, err := s.productRepo.GetProductByID(row.ProductID); err == nil {
			name = product.Name
		}
		lowStock = append(lowStock, models.LowStockItem{
			ProductID:   row.ProductID,
			ProductName: name,
			Quantity:    row.Quantity,
			MinStock:    row.MinStock,
		})
	}

	return &models.DashboardSummary{
		StoreID:        storeID,
		TodayRevenue:   todayRevenue,
		TotalOrders:    len(orders),
		ActiveOrders:   activeOrders,
		LowStockCount:  len(lowStock),
		LowStockItems:  lowStock,
		TotalCustomers: dashboardTotalCustomers,
	}, nil
}
