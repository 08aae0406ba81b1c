package services

import (
	"testing"
	"time"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleFixture(t *testing.T) (SaleService, *models.Store) {
	t.Helper()

	saleRepo := repositories.NewSaleRepository()
	storeRepo := repositories.NewStoreRepository()
	store, err := storeRepo.CreateStore(&models.Store{Name: "Médina", Address: "Rue 11", ManagerID: 1, IsActive: true})
	require.NoError(t, err)

	return NewSaleService(saleRepo, storeRepo), store
}

func TestCreateSaleComputesTotalWhenOmitted(t *testing.T) {
	svc, store := newSaleFixture(t)

	sale, err := svc.CreateSale(CreateSaleRequest{
		StoreID:       store.ID,
		ManagerID:     1,
		PaymentMethod: models.PaymentMethodCash,
		Items: []models.SaleItem{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("650.00")},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("1200.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2500.00", sale.TotalAmount.String())
	assert.False(t, sale.CreatedAt.IsZero())
}

func TestCreateSaleKeepsClientTotal(t *testing.T) {
	svc, store := newSaleFixture(t)

	sale, err := svc.CreateSale(CreateSaleRequest{
		StoreID:       store.ID,
		ManagerID:     1,
		TotalAmount:   decimal.RequireFromString("2000.00"),
		PaymentMethod: models.PaymentMethodCard,
		Items: []models.SaleItem{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("650.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2000.00", sale.TotalAmount.String())
}

func TestCreateSaleUnknownStore(t *testing.T) {
	svc, _ := newSaleFixture(t)

	_, err := svc.CreateSale(CreateSaleRequest{
		StoreID: 404, ManagerID: 1, PaymentMethod: models.PaymentMethodCash,
		Items: []models.SaleItem{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestGetSalesByStoreDateFilter(t *testing.T) {
	svc, store := newSaleFixture(t)

	_, err := svc.CreateSale(CreateSaleRequest{
		StoreID: store.ID, ManagerID: 1, PaymentMethod: models.PaymentMethodCash,
		Items: []models.SaleItem{{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("650.00")}},
	})
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	sales, err := svc.GetSalesByStore(store.ID, models.SaleFilters{StartDate: &today, EndDate: &today})
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	// a range ending yesterday excludes today's sale
	sales, err = svc.GetSalesByStore(store.ID, models.SaleFilters{EndDate: &yesterday})
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestGetSalesByStoreRejectsBadDate(t *testing.T) {
	svc, store := newSaleFixture(t)

	bad := "28-08-2026"
	_, err := svc.GetSalesByStore(store.ID, models.SaleFilters{StartDate: &bad})
	assert.ErrorIs(t, err, ErrInvalidDateFilter)
}
