package services

import (
	"testing"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsFixture struct {
	svc         AnalyticsService
	saleRepo    repositories.SaleRepository
	orderRepo   repositories.OrderRepository
	invRepo     repositories.InventoryRepository
	productRepo repositories.ProductRepository
	store       *models.Store
}

func newAnalyticsFixture(t *testing.T) *analyticsFixture {
	t.Helper()

	storeRepo := repositories.NewStoreRepository()
	saleRepo := repositories.NewSaleRepository()
	orderRepo := repositories.NewOrderRepository()
	invRepo := repositories.NewInventoryRepository()
	productRepo := repositories.NewProductRepository()

	store, err := storeRepo.CreateStore(&models.Store{Name: "Médina", Address: "Rue 11", ManagerID: 1, IsActive: true})
	require.NoError(t, err)

	return &analyticsFixture{
		svc:         NewAnalyticsService(storeRepo, saleRepo, orderRepo, invRepo, productRepo),
		saleRepo:    saleRepo,
		orderRepo:   orderRepo,
		invRepo:     invRepo,
		productRepo: productRepo,
		store:       store,
	}
}

func TestGetDashboardSummaryUnknownStore(t *testing.T) {
	f := newAnalyticsFixture(t)

	_, err := f.svc.GetDashboardSummary(404)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestGetDashboardSummaryEmptyStore(t *testing.T) {
	f := newAnalyticsFixture(t)

	summary, err := f.svc.GetDashboardSummary(f.store.ID)
	require.NoError(t, err)
	assert.True(t, summary.TodayRevenue.IsZero())
	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0, summary.ActiveOrders)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Empty(t, summary.LowStockItems)
	assert.Equal(t, 156, summary.TotalCustomers)
}

func TestGetDashboardSummaryTodayRevenue(t *testing.T) {
	f := newAnalyticsFixture(t)

	_, err := f.saleRepo.CreateSale(&models.Sale{
		StoreID: f.store.ID, ManagerID: 1,
		TotalAmount: decimal.RequireFromString("5000.00"), PaymentMethod: models.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = f.saleRepo.CreateSale(&models.Sale{
		StoreID: f.store.ID, ManagerID: 1,
		TotalAmount: decimal.RequireFromString("2500.50"), PaymentMethod: models.PaymentMethodMobile,
	})
	require.NoError(t, err)
	// another store's sale must not count
	_, err = f.saleRepo.CreateSale(&models.Sale{
		StoreID: f.store.ID + 1, ManagerID: 1,
		TotalAmount: decimal.RequireFromString("9999.00"), PaymentMethod: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	summary, err := f.svc.GetDashboardSummary(f.store.ID)
	require.NoError(t, err)
	assert.Equal(t, "7500.50", summary.TodayRevenue.String())
}

func TestGetDashboardSummaryOrderCounts(t *testing.T) {
	f := newAnalyticsFixture(t)

	mk := func(status string) {
		_, err := f.orderRepo.CreateOrder(&models.Order{
			CustomerID: 1, StoreID: f.store.ID, Status: status, Type: models.OrderTypePickup,
		})
		require.NoError(t, err)
	}
	mk(models.OrderStatusPending)
	mk(models.OrderStatusPreparing)
	mk(models.OrderStatusReady)
	mk(models.OrderStatusDelivered)
	mk(models.OrderStatusCancelled)

	summary, err := f.svc.GetDashboardSummary(f.store.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.TotalOrders)
	assert.Equal(t, 2, summary.ActiveOrders)
}

func TestGetDashboardSummaryLowStockBoundary(t *testing.T) {
	f := newAnalyticsFixture(t)

	product, err := f.productRepo.CreateProduct(&models.Product{
		Name: "Mil souna 1kg", Price: decimal.RequireFromString("650.00"), Unit: "kg", IsActive: true,
	})
	require.NoError(t, err)

	// quantity equal to the threshold counts as low; one above does not
	_, err = f.invRepo.CreateInventoryItem(&models.Inventory{ProductID: product.ID, StoreID: f.store.ID, Quantity: 5, MinStock: 5})
	require.NoError(t, err)
	_, err = f.invRepo.CreateInventoryItem(&models.Inventory{ProductID: product.ID + 100, StoreID: f.store.ID, Quantity: 6, MinStock: 5})
	require.NoError(t, err)

	summary, err := f.svc.GetDashboardSummary(f.store.ID)
	require.NoError(t, err)
	require.Equal(t, 1, summary.LowStockCount)
	require.Len(t, summary.LowStockItems, 1)

	item := summary.LowStockItems[0]
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, "Mil souna 1kg", item.ProductName)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 5, item.MinStock)
}
