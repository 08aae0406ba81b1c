package router

import (
	"fmt"

	"njaboot_connect_backend/internal/models"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

// SeedDemoData loads a small demo dataset: one manager with a store, one
// customer with a loyalty balance, a product catalog with stock rows, and
// a purchasing center offering the staples. The store starts with two rows
// at or below their restock threshold so the dashboard has something to
// report. Intended for local development; enable with SEED_DEMO_DATA=true.
func SeedDemoData(repos *Repositories) error {
	manager, err := repos.Users.CreateUser(&models.User{
		Username:  "aminata.store",
		Email:     "aminata@njaboot.sn",
		Password:  "password123",
		FirstName: "Aminata",
		LastName:  "Diallo",
		Role:      models.RoleManager,
		Phone:     strPtr("+221771234567"),
	})
	if err != nil {
		return fmt.Errorf("seed manager: %w", err)
	}

	customer, err := repos.Users.CreateUser(&models.User{
		Username:  "moussa.ba",
		Email:     "moussa@example.sn",
		Password:  "password123",
		FirstName: "Moussa",
		LastName:  "Ba",
		Role:      models.RoleCustomer,
		Phone:     strPtr("+221775551234"),
		Address:   strPtr("Cité Keur Gorgui, Dakar"),
	})
	if err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}
	if _, err := repos.Loyalty.AdjustLoyaltyPoints(customer.ID, 2450); err != nil {
		return fmt.Errorf("seed loyalty: %w", err)
	}

	store, err := repos.Stores.CreateStore(&models.Store{
		Name:      "Njaboot Market Médina",
		Address:   "Rue 11 x 20, Médina, Dakar",
		ManagerID: manager.ID,
		Phone:     strPtr("+221338221100"),
		IsActive:  true,
	})
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	categoryNames := []struct {
		name string
		desc string
	}{
		{"Céréales", "Riz, mil, maïs et dérivés"},
		{"Huiles & Condiments", "Huiles de cuisine, épices et condiments"},
		{"Boissons", "Eaux, jus et boissons locales"},
	}
	categories := make([]*models.Category, 0, len(categoryNames))
	for _, cn := range categoryNames {
		cat, err := repos.Categories.CreateCategory(&models.Category{Name: cn.name, Description: strPtr(cn.desc)})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", cn.name, err)
		}
		categories = append(categories, cat)
	}

	type seedProduct struct {
		name     string
		price    string
		category *models.Category
		unit     string
		quantity int
		minStock int
	}
	seedProducts := []seedProduct{
		{"Riz brisé parfumé 25kg", "14500.00", categories[0], "sac", 42, 10},
		{"Mil souna 1kg", "650.00", categories[0], "kg", 8, 15},
		{"Huile d'arachide 5L", "7800.00", categories[1], "bidon", 25, 6},
		{"Bouillon cube 60x10g", "1400.00", categories[1], "boîte", 60, 20},
		{"Bissap concentré 1L", "1200.00", categories[2], "bouteille", 5, 5},
		{"Eau minérale 10L", "1000.00", categories[2], "bonbonne", 30, 12},
	}
	productIDs := make([]int64, 0, len(seedProducts))
	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return fmt.Errorf("seed product %q: %w", sp.name, err)
		}
		product, err := repos.Products.CreateProduct(&models.Product{
			Name:       sp.name,
			Price:      price,
			CategoryID: &sp.category.ID,
			Unit:       sp.unit,
			IsActive:   true,
		})
		if err != nil {
			return fmt.Errorf("seed product %q: %w", sp.name, err)
		}
		productIDs = append(productIDs, product.ID)

		if _, err := repos.Inventory.CreateInventoryItem(&models.Inventory{
			ProductID: product.ID,
			StoreID:   store.ID,
			Quantity:  sp.quantity,
			MinStock:  sp.minStock,
		}); err != nil {
			return fmt.Errorf("seed inventory for %q: %w", sp.name, err)
		}
	}

	center, err := repos.Centers.CreateCenter(&models.PurchasingCenter{
		Name:          "Centrale d'Achat Sandaga",
		Address:       "Avenue Blaise Diagne, Dakar",
		City:          "Dakar",
		Phone:         "+221338239000",
		Email:         "contact@sandaga-distribution.sn",
		Specialties:   []string{"céréales", "huiles", "boissons"},
		DeliveryZones: []string{"Dakar", "Thiès", "Rufisque"},
		IsActive:      true,
	})
	if err != nil {
		return fmt.Errorf("seed purchasing center: %w", err)
	}

	wholesalePrices := []string{"13200.00", "520.00", "7100.00", "1150.00", "980.00", "850.00"}
	for i, productID := range productIDs {
		unitPrice, err := decimal.NewFromString(wholesalePrices[i])
		if err != nil {
			return fmt.Errorf("seed center offer: %w", err)
		}
		if _, err := repos.Centers.CreateCenterProduct(&models.CenterProduct{
			CenterID:         center.ID,
			ProductID:        productID,
			UnitPrice:        unitPrice,
			MinOrderQuantity: 5,
			StockQuantity:    500,
			DeliveryTime:     3,
			IsAvailable:      true,
		}); err != nil {
			return fmt.Errorf("seed center offer: %w", err)
		}
	}

	return nil
}
