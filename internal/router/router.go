package router

import (
	"njaboot_connect_backend/internal/handlers"
	"njaboot_connect_backend/internal/repositories"
	"njaboot_connect_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Repositories bundles every storage interface the application wires up.
// All implementations are in-memory for the process lifetime; the
// interfaces are the seam for a real persistence engine later.
type Repositories struct {
	Users         repositories.UserRepository
	Stores        repositories.StoreRepository
	Categories    repositories.CategoryRepository
	Products      repositories.ProductRepository
	Inventory     repositories.InventoryRepository
	Orders        repositories.OrderRepository
	Sales         repositories.SaleRepository
	Loyalty       repositories.LoyaltyRepository
	Notifications repositories.NotificationRepository
	Centers       repositories.PurchasingCenterRepository
	SupplyOrders  repositories.SupplyOrderRepository
}

// NewRepositories constructs the full in-memory repository set.
func NewRepositories() *Repositories {
	return &Repositories{
		Users:         repositories.NewUserRepository(),
		Stores:        repositories.NewStoreRepository(),
		Categories:    repositories.NewCategoryRepository(),
		Products:      repositories.NewProductRepository(),
		Inventory:     repositories.NewInventoryRepository(),
		Orders:        repositories.NewOrderRepository(),
		Sales:         repositories.NewSaleRepository(),
		Loyalty:       repositories.NewLoyaltyRepository(),
		Notifications: repositories.NewNotificationRepository(),
		Centers:       repositories.NewPurchasingCenterRepository(),
		SupplyOrders:  repositories.NewSupplyOrderRepository(),
	}
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, repos *Repositories) {
	// Initialize Services
	authService := services.NewAuthService(repos.Users, repos.Loyalty)
	catalogService := services.NewCatalogService(repos.Categories, repos.Products, repos.Stores, repos.Inventory)
	inventoryService := services.NewInventoryService(repos.Inventory, repos.Products, repos.Stores)
	orderService := services.NewOrderService(repos.Orders, repos.Users, repos.Stores, repos.Products)
	saleService := services.NewSaleService(repos.Sales, repos.Stores)
	loyaltyService := services.NewLoyaltyService(repos.Loyalty, repos.Users)
	notificationService := services.NewNotificationService(repos.Notifications, repos.Users)
	supplyService := services.NewSupplyService(repos.Centers, repos.SupplyOrders, repos.Stores, repos.Products)
	analyticsService := services.NewAnalyticsService(repos.Stores, repos.Sales, repos.Orders, repos.Inventory, repos.Products)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	saleHandler := handlers.NewSaleHandler(saleService)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	supplyHandler := handlers.NewSupplyHandler(supplyService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	api := engine.Group("/api")

	SetupAuthRoutes(api, authHandler)
	SetupUserRoutes(api, authHandler)
	SetupStoreRoutes(api, catalogHandler)
	SetupCategoryRoutes(api, catalogHandler)
	SetupProductRoutes(api, catalogHandler)
	SetupInventoryRoutes(api, inventoryHandler)
	SetupOrderRoutes(api, orderHandler)
	SetupSaleRoutes(api, saleHandler)
	SetupAnalyticsRoutes(api, analyticsHandler)
	SetupLoyaltyRoutes(api, loyaltyHandler)
	SetupNotificationRoutes(api, notificationHandler)
	SetupSupplyRoutes(api, supplyHandler)
}
