package services

import (
	"testing"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFilterProducts(t *testing.T) {
	categoryRepo := repositories.NewCategoryRepository()
	productRepo := repositories.NewProductRepository()
	svc := NewCatalogService(categoryRepo, productRepo, repositories.NewStoreRepository(), repositories.NewInventoryRepository())

	cereals, err := svc.CreateCategory(CreateCategoryRequest{Name: "Céréales"})
	require.NoError(t, err)
	drinks, err := svc.CreateCategory(CreateCategoryRequest{Name: "Boissons"})
	require.NoError(t, err)

	_, err = svc.CreateProduct(CreateProductRequest{
		Name: "Riz brisé", Price: decimal.RequireFromString("14500.00"), CategoryID: &cereals.ID, Unit: "sac",
	})
	require.NoError(t, err)
	_, err = svc.CreateProduct(CreateProductRequest{
		Name: "Bissap", Price: decimal.RequireFromString("1200.00"), CategoryID: &drinks.ID, Unit: "bouteille",
	})
	require.NoError(t, err)

	all, err := svc.GetProducts(models.ProductFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.GetProducts(models.ProductFilters{CategoryID: &drinks.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Bissap", filtered[0].Name)

	// deactivated products drop out of the listing but stay fetchable
	inactive := false
	_, err = svc.UpdateProduct(filtered[0].ID, models.ProductUpdate{IsActive: &inactive})
	require.NoError(t, err)

	all, err = svc.GetProducts(models.ProductFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	fetched, err := svc.GetProductByID(filtered[0].ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}

func TestUpdateProductPartialPatch(t *testing.T) {
	svc := NewCatalogService(
		repositories.NewCategoryRepository(),
		repositories.NewProductRepository(),
		repositories.NewStoreRepository(),
		repositories.NewInventoryRepository(),
	)

	created, err := svc.CreateProduct(CreateProductRequest{
		Name: "Huile 5L", Price: decimal.RequireFromString("7800.00"), Unit: "bidon",
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("8200.00")
	updated, err := svc.UpdateProduct(created.ID, models.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Huile 5L", updated.Name)
	assert.Equal(t, "bidon", updated.Unit)

	_, err = svc.UpdateProduct(404, models.ProductUpdate{Price: &newPrice})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetStoresFiltersInactive(t *testing.T) {
	storeRepo := repositories.NewStoreRepository()
	svc := NewCatalogService(
		repositories.NewCategoryRepository(),
		repositories.NewProductRepository(),
		storeRepo,
		repositories.NewInventoryRepository(),
	)

	_, err := storeRepo.CreateStore(&models.Store{Name: "Médina", Address: "Rue 11", ManagerID: 1, IsActive: true})
	require.NoError(t, err)
	_, err = storeRepo.CreateStore(&models.Store{Name: "Fermée", Address: "Rue 12", ManagerID: 1, IsActive: false})
	require.NoError(t, err)

	stores, err := svc.GetStores()
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Médina", stores[0].Name)
}

func TestGetStoresByProduct(t *testing.T) {
	storeRepo := repositories.NewStoreRepository()
	productRepo := repositories.NewProductRepository()
	invRepo := repositories.NewInventoryRepository()
	svc := NewCatalogService(repositories.NewCategoryRepository(), productRepo, storeRepo, invRepo)

	stocked, err := storeRepo.CreateStore(&models.Store{Name: "Médina", Address: "Rue 11", ManagerID: 1, IsActive: true})
	require.NoError(t, err)
	empty, err := storeRepo.CreateStore(&models.Store{Name: "Plateau", Address: "Av. Pompidou", ManagerID: 1, IsActive: true})
	require.NoError(t, err)

	product, err := productRepo.CreateProduct(&models.Product{
		Name: "Riz brisé", Price: decimal.RequireFromString("14500.00"), Unit: "sac", IsActive: true,
	})
	require.NoError(t, err)

	_, err = invRepo.CreateInventoryItem(&models.Inventory{ProductID: product.ID, StoreID: stocked.ID, Quantity: 10})
	require.NoError(t, err)
	_, err = invRepo.CreateInventoryItem(&models.Inventory{ProductID: product.ID, StoreID: empty.ID, Quantity: 0})
	require.NoError(t, err)

	stores, err := svc.GetStoresByProduct(product.ID)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, stocked.ID, stores[0].ID)

	// an unknown product simply has no stores carrying it
	none, err := svc.GetStoresByProduct(404)
	require.NoError(t, err)
	assert.Empty(t, none)
}
