package services

import (
	"testing"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc         OrderService
	productRepo repositories.ProductRepository
	customer    *models.User
	store       *models.Store
	product     *models.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	orderRepo := repositories.NewOrderRepository()
	userRepo := repositories.NewUserRepository()
	storeRepo := repositories.NewStoreRepository()
	productRepo := repositories.NewProductRepository()

	customer, err := userRepo.CreateUser(&models.User{
		Username: "moussa", Email: "moussa@example.com", Password: "password123",
		FirstName: "Moussa", LastName: "Ba", Role: models.RoleCustomer,
	})
	require.NoError(t, err)

	store, err := storeRepo.CreateStore(&models.Store{Name: "Médina", Address: "Rue 11", ManagerID: 99, IsActive: true})
	require.NoError(t, err)

	product, err := productRepo.CreateProduct(&models.Product{
		Name: "Riz brisé 25kg", Price: decimal.RequireFromString("14500.00"), Unit: "sac", IsActive: true,
	})
	require.NoError(t, err)

	return &orderFixture{
		svc:         NewOrderService(orderRepo, userRepo, storeRepo, productRepo),
		productRepo: productRepo,
		customer:    customer,
		store:       store,
		product:     product,
	}
}

func TestCreateOrderDefaultsAndComputedTotal(t *testing.T) {
	f := newOrderFixture(t)

	detail, err := f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID,
		StoreID:    f.store.ID,
		Type:       models.OrderTypePickup,
		Items: []CreateOrderItemRequest{
			{ProductID: f.product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, detail.Status)
	assert.True(t, detail.TotalAmount.Equal(decimal.RequireFromString("29000.00")),
		"got total %s", detail.TotalAmount)
	require.Len(t, detail.Items, 1)
	assert.True(t, detail.Items[0].UnitPrice.Equal(f.product.Price))
	assert.Empty(t, detail.Customer.Password)
}

func TestCreateOrderKeepsClientTotal(t *testing.T) {
	f := newOrderFixture(t)

	detail, err := f.svc.CreateOrder(CreateOrderRequest{
		CustomerID:  f.customer.ID,
		StoreID:     f.store.ID,
		Type:        models.OrderTypePickup,
		TotalAmount: decimal.RequireFromString("100.00"),
		Items: []CreateOrderItemRequest{
			{ProductID: f.product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// a client-supplied total is stored as-is, even when it disagrees
	// with the line items
	assert.True(t, detail.TotalAmount.Equal(decimal.RequireFromString("100.00")))
}

func TestOrderUnitPriceIsSnapshotAtCreation(t *testing.T) {
	f := newOrderFixture(t)

	detail, err := f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID,
		StoreID:    f.store.ID,
		Type:       models.OrderTypePickup,
		Items: []CreateOrderItemRequest{
			{ProductID: f.product.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	originalTotal := detail.TotalAmount

	newPrice := decimal.RequireFromString("20000.00")
	_, err = f.productRepo.UpdateProduct(f.product.ID, models.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	reread, err := f.svc.GetOrderByID(detail.ID)
	require.NoError(t, err)
	assert.True(t, reread.Items[0].UnitPrice.Equal(decimal.RequireFromString("14500.00")),
		"item price changed after product price update: %s", reread.Items[0].UnitPrice)
	assert.True(t, reread.TotalAmount.Equal(originalTotal))
	// the joined product reflects the new list price
	assert.True(t, reread.Items[0].Product.Price.Equal(newPrice))
}

func TestCreateOrderDeliveryRequiresAddress(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID,
		StoreID:    f.store.ID,
		Type:       models.OrderTypeDelivery,
		Items:      []CreateOrderItemRequest{{ProductID: f.product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrDeliveryAddressRequired)

	addr := "Cité Keur Gorgui, Dakar"
	detail, err := f.svc.CreateOrder(CreateOrderRequest{
		CustomerID:      f.customer.ID,
		StoreID:         f.store.ID,
		Type:            models.OrderTypeDelivery,
		DeliveryAddress: &addr,
		Items:           []CreateOrderItemRequest{{ProductID: f.product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.NotNil(t, detail.DeliveryAddress)
	assert.Equal(t, addr, *detail.DeliveryAddress)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID, StoreID: f.store.ID, Type: models.OrderTypePickup,
		Items: []CreateOrderItemRequest{},
	})
	assert.ErrorIs(t, err, ErrOrderHasNoItems)

	_, err = f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: 404, StoreID: f.store.ID, Type: models.OrderTypePickup,
		Items: []CreateOrderItemRequest{{ProductID: f.product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID, StoreID: 404, Type: models.OrderTypePickup,
		Items: []CreateOrderItemRequest{{ProductID: f.product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)

	_, err = f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID, StoreID: f.store.ID, Type: models.OrderTypePickup,
		Items: []CreateOrderItemRequest{{ProductID: 404, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID, StoreID: f.store.ID, Type: models.OrderTypePickup,
		Status:     "teleported",
		Items:      []CreateOrderItemRequest{{ProductID: f.product.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newOrderFixture(t)

	detail, err := f.svc.CreateOrder(CreateOrderRequest{
		CustomerID: f.customer.ID, StoreID: f.store.ID, Type: models.OrderTypePickup,
		Items: []CreateOrderItemRequest{{ProductID: f.product.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateOrderStatus(detail.ID, UpdateOrderStatusRequest{Status: "lost"})
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	updated, err := f.svc.UpdateOrderStatus(detail.ID, UpdateOrderStatusRequest{Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	assert.NotNil(t, updated.DeliveredAt)

	_, err = f.svc.UpdateOrderStatus(404, UpdateOrderStatusRequest{Status: models.OrderStatusReady})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
