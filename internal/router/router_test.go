package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"njaboot_connect_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full stack against fresh in-memory state with the
// demo dataset loaded: manager id 1, customer id 2, store id 1, products
// ids 1-6 and purchasing center id 1.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	repos := NewRepositories()
	Setup(engine, repos)
	require.NoError(t, SeedDemoData(repos))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func TestRegisterLoginAndMe(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{
		"username":  "awa.ndiaye",
		"email":     "awa@example.sn",
		"password":  "password123",
		"firstName": "Awa",
		"lastName":  "Ndiaye",
		"role":      "customer",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered models.User
	decodeBody(t, rec, &registered)
	assert.Empty(t, registered.Password)
	assert.NotZero(t, registered.ID)

	// second registration with the same email is rejected and leaves the
	// original account intact
	rec = doJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{
		"username":  "impostor",
		"email":     "awa@example.sn",
		"password":  "password123",
		"firstName": "Someone",
		"lastName":  "Else",
		"role":      "customer",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "awa@example.sn",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		User        models.User `json:"user"`
		AccessToken string      `json:"accessToken"`
	}
	decodeBody(t, rec, &login)
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, registered.ID, login.User.ID)
	assert.Equal(t, "Awa", login.User.FirstName)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	me := httptest.NewRecorder()
	engine.ServeHTTP(me, req)
	require.Equal(t, http.StatusOK, me.Code, me.Body.String())

	var profile models.User
	decodeBody(t, me, &profile)
	assert.Equal(t, "awa@example.sn", profile.Email)
	assert.Empty(t, profile.Password)
}

func TestMeRequiresToken(t *testing.T) {
	engine := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "moussa@example.sn",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderLifecycle(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []models.Product
	decodeBody(t, rec, &products)
	require.NotEmpty(t, products)

	rec = doJSON(t, engine, http.MethodPost, "/api/orders", gin.H{
		"customerId": 2,
		"storeId":    1,
		"type":       "pickup",
		"items": []gin.H{
			{"productId": products[0].ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.OrderDetail
	decodeBody(t, rec, &created)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	require.Len(t, created.Items, 1)
	assert.True(t, created.Items[0].UnitPrice.Equal(products[0].Price))

	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/orders/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.OrderDetail
	decodeBody(t, rec, &fetched)
	assert.Equal(t, int64(2), fetched.Customer.ID)
	assert.Empty(t, fetched.Customer.Password)
	assert.Equal(t, int64(1), fetched.Store.ID)
	assert.Equal(t, products[0].Name, fetched.Items[0].Product.Name)

	rec = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", created.ID), gin.H{
		"status": "delivered",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var delivered models.Order
	decodeBody(t, rec, &delivered)
	assert.Equal(t, models.OrderStatusDelivered, delivered.Status)
	assert.NotNil(t, delivered.DeliveredAt)

	rec = doJSON(t, engine, http.MethodGet, "/api/orders?customerId=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.Order
	decodeBody(t, rec, &orders)
	assert.Len(t, orders, 1)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/orders", gin.H{
		"customerId": 404,
		"storeId":    1,
		"type":       "pickup",
		"items":      []gin.H{{"productId": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateInventoryMissingRowIs404(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodPut, "/api/inventory/999/1", gin.H{"quantity": 5})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// the store inventory must be unchanged by the rejected update
	rec = doJSON(t, engine, http.MethodGet, "/api/inventory/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rows []models.InventoryDetail
	decodeBody(t, rec, &rows)
	for _, row := range rows {
		assert.NotEqual(t, int64(999), row.ProductID)
	}
}

func TestSalesDateFilterValidation(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/sales/1?startDate=28-08-2026", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardSummary(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/analytics/dashboard/1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var summary models.DashboardSummary
	decodeBody(t, rec, &summary)
	assert.Equal(t, int64(1), summary.StoreID)
	assert.Equal(t, 156, summary.TotalCustomers)
	// the demo dataset seeds two rows at or below their restock threshold
	assert.Equal(t, 2, summary.LowStockCount)
	assert.Len(t, summary.LowStockItems, 2)

	rec = doJSON(t, engine, http.MethodGet, "/api/analytics/dashboard/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSupplyOrderFlow(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/purchasing-centers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var centers []models.PurchasingCenter
	decodeBody(t, rec, &centers)
	require.NotEmpty(t, centers)

	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/center-products/%d", centers[0].ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var offers []models.CenterProductDetail
	decodeBody(t, rec, &offers)
	require.NotEmpty(t, offers)

	rec = doJSON(t, engine, http.MethodPost, "/api/supply-orders", gin.H{
		"storeId":  1,
		"centerId": centers[0].ID,
		"items": []gin.H{
			{"productId": offers[0].ProductID, "quantity": 15, "unitPrice": "440.00"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.SupplyOrderDetail
	decodeBody(t, rec, &created)
	assert.Equal(t, models.SupplyStatusPending, created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, "6600.00", created.Items[0].TotalPrice.String())
	assert.Equal(t, "6600.00", created.TotalAmount.String())
	assert.Regexp(t, `^SUP-\d+-[a-z0-9]{6}$`, created.OrderNumber)

	rec = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/api/supply-orders/%d/status", created.ID), gin.H{
		"status": "shipped",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var shipped models.SupplyOrder
	decodeBody(t, rec, &shipped)
	require.NotNil(t, shipped.TrackingNumber)
	assert.Contains(t, *shipped.TrackingNumber, "TRK-")

	rec = doJSON(t, engine, http.MethodGet, "/api/supply-orders/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []models.SupplyOrderDetail
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 1)
}

func TestLoyaltyEndpoints(t *testing.T) {
	engine := newTestServer(t)

	// the seeded customer starts at 2450 points (silver)
	rec := doJSON(t, engine, http.MethodGet, "/api/loyalty/2", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var lp models.LoyaltyPoints
	decodeBody(t, rec, &lp)
	assert.Equal(t, 2450, lp.Points)
	assert.Equal(t, models.LoyaltyLevelSilver, lp.Level)

	rec = doJSON(t, engine, http.MethodPost, "/api/loyalty/2/adjust", gin.H{"points": 2550})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeBody(t, rec, &lp)
	assert.Equal(t, 5000, lp.Points)
	assert.Equal(t, models.LoyaltyLevelGold, lp.Level)

	rec = doJSON(t, engine, http.MethodGet, "/api/loyalty/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoresByProduct(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/stores/product/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stores []models.Store
	decodeBody(t, rec, &stores)
	require.Len(t, stores, 1)
	assert.Equal(t, int64(1), stores[0].ID)
}

func TestProductPatch(t *testing.T) {
	engine := newTestServer(t)

	rec := doJSON(t, engine, http.MethodPatch, "/api/products/1", gin.H{"price": "15000.00"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Product
	decodeBody(t, rec, &updated)
	assert.Equal(t, "15000.00", updated.Price.String())
	// untouched fields survive the patch
	assert.NotEmpty(t, updated.Name)
	assert.True(t, updated.IsActive)

	rec = doJSON(t, engine, http.MethodPatch, "/api/products/999", gin.H{"price": "1.00"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
