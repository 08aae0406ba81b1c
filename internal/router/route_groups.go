package router

import (
	"njaboot_connect_backend/internal/handlers"
	"njaboot_connect_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes. Register and login
// are public; /auth/me requires a valid access token.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterUser)
		authRoutes.POST("/login", authHandler.LoginUser)
		authRoutes.GET("/me", middleware.AuthMiddleware(), authHandler.GetCurrentUser)
	}
}

// SetupUserRoutes sets up the user lookup routes.
func SetupUserRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	apiGroup.GET("/users/:id", authHandler.GetUserByID)
}

// SetupStoreRoutes sets up the store routes. The static segments come
// before the :id parameter so gin does not shadow them.
func SetupStoreRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	storeRoutes := apiGroup.Group("/stores")
	{
		storeRoutes.GET("", catalogHandler.GetStores)
		storeRoutes.GET("/manager/:managerId", catalogHandler.GetStoresByManager)
		storeRoutes.GET("/product/:productId", catalogHandler.GetStoresByProduct)
		storeRoutes.GET("/:id", catalogHandler.GetStoreByID)
	}
}

// SetupCategoryRoutes sets up the category routes.
func SetupCategoryRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	categoryRoutes := apiGroup.Group("/categories")
	{
		categoryRoutes.GET("", catalogHandler.GetCategories)
		categoryRoutes.POST("", catalogHandler.CreateCategory)
	}
}

// SetupProductRoutes sets up the product routes.
func SetupProductRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	productRoutes := apiGroup.Group("/products")
	{
		productRoutes.GET("", catalogHandler.GetProducts)
		productRoutes.GET("/:id", catalogHandler.GetProductByID)
		productRoutes.POST("", catalogHandler.CreateProduct)
		productRoutes.PATCH("/:id", catalogHandler.UpdateProduct)
	}
}

// SetupInventoryRoutes sets up the inventory routes.
func SetupInventoryRoutes(apiGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := apiGroup.Group("/inventory")
	{
		inventoryRoutes.GET("/:storeId", inventoryHandler.GetStoreInventory)
		inventoryRoutes.POST("", inventoryHandler.CreateInventoryItem)
		inventoryRoutes.PUT("/:productId/:storeId", inventoryHandler.UpdateInventory)
	}
}

// SetupOrderRoutes sets up the customer order routes.
func SetupOrderRoutes(apiGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := apiGroup.Group("/orders")
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.PUT("/:id/status", orderHandler.UpdateOrderStatus)
	}
}

// SetupSaleRoutes sets up the point-of-sale routes.
func SetupSaleRoutes(apiGroup *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	saleRoutes := apiGroup.Group("/sales")
	{
		saleRoutes.POST("", saleHandler.CreateSale)
		saleRoutes.GET("/:storeId", saleHandler.GetSalesByStore)
	}
}

// SetupAnalyticsRoutes sets up the analytics routes.
func SetupAnalyticsRoutes(apiGroup *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler) {
	apiGroup.GET("/analytics/dashboard/:storeId", analyticsHandler.GetDashboardSummary)
}

// SetupLoyaltyRoutes sets up the loyalty routes.
func SetupLoyaltyRoutes(apiGroup *gin.RouterGroup, loyaltyHandler *handlers.LoyaltyHandler) {
	loyaltyRoutes := apiGroup.Group("/loyalty")
	{
		loyaltyRoutes.GET("/:customerId", loyaltyHandler.GetLoyaltyByCustomer)
		loyaltyRoutes.POST("/:customerId/adjust", loyaltyHandler.AdjustLoyaltyPoints)
	}
}

// SetupNotificationRoutes sets up the notification routes.
func SetupNotificationRoutes(apiGroup *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notificationRoutes := apiGroup.Group("/notifications")
	{
		notificationRoutes.POST("", notificationHandler.CreateNotification)
		notificationRoutes.GET("/:userId", notificationHandler.GetNotificationsByUser)
		notificationRoutes.PUT("/:id/read", notificationHandler.MarkNotificationRead)
	}
}

// SetupSupplyRoutes sets up the supply-chain routes: purchasing centers,
// their catalogs, and supply orders.
func SetupSupplyRoutes(apiGroup *gin.RouterGroup, supplyHandler *handlers.SupplyHandler) {
	apiGroup.GET("/purchasing-centers", supplyHandler.GetPurchasingCenters)
	apiGroup.GET("/center-products/:centerId", supplyHandler.GetCenterProducts)

	supplyOrderRoutes := apiGroup.Group("/supply-orders")
	{
		supplyOrderRoutes.POST("", supplyHandler.CreateSupplyOrder)
		supplyOrderRoutes.GET("/:storeId", supplyHandler.GetSupplyOrdersByStore)
		supplyOrderRoutes.PATCH("/:id/status", supplyHandler.UpdateSupplyOrderStatus)
	}
}
