package handlers

import (
	"errors"
	"net/http"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/services"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service (categories, products, stores).
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// GetCategories handles GET /api/categories.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetCategories()
	if err != nil {
		utils.LogError(err, "GetCategories: Error from catalogService.GetCategories")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch categories.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCategory: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	category, err := h.catalogService.CreateCategory(req)
	if err != nil {
		utils.LogError(err, "CreateCategory: Error from catalogService.CreateCategory")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create category.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetProducts handles GET /api/products with an optional categoryId filter.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var filters models.ProductFilters
	if categoryIDStr := c.Query("categoryId"); categoryIDStr != "" {
		categoryID, err := utils.StrToInt64(categoryIDStr)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid categoryId format.", err.Error()))
			return
		}
		filters.CategoryID = &categoryID
	}

	products, err := h.catalogService.GetProducts(filters)
	if err != nil {
		utils.LogError(err, "GetProducts: Error from catalogService.GetProducts")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch products.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /api/products/:id.
func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	productID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format.", err.Error()))
		return
	}

	product, err := h.catalogService.GetProductByID(productID)
	if err != nil {
		utils.LogError(err, "GetProductByID: Error from catalogService.GetProductByID")
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch product.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateProduct: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	product, err := h.catalogService.CreateProduct(req)
	if err != nil {
		utils.LogError(err, "CreateProduct: Error from catalogService.CreateProduct")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create product.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PATCH /api/products/:id with partial-update
// semantics: only the provided fields change.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	productID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format.", err.Error()))
		return
	}

	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.LogError(err, "UpdateProduct: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	product, err := h.catalogService.UpdateProduct(productID, update)
	if err != nil {
		utils.LogError(err, "UpdateProduct: Error from catalogService.UpdateProduct")
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update product.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetStores handles GET /api/stores.
func (h *CatalogHandler) GetStores(c *gin.Context) {
	stores, err := h.catalogService.GetStores()
	if err != nil {
		utils.LogError(err, "GetStores: Error from catalogService.GetStores")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stores.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GetStoreByID handles GET /api/stores/:id.
func (h *CatalogHandler) GetStoreByID(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	store, err := h.catalogService.GetStoreByID(storeID)
	if err != nil {
		utils.LogError(err, "GetStoreByID: Error from catalogService.GetStoreByID")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch store.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, store)
}

// GetStoresByManager handles GET /api/stores/manager/:managerId.
func (h *CatalogHandler) GetStoresByManager(c *gin.Context) {
	managerID, err := utils.StrToInt64(c.Param("managerId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid manager ID format.", err.Error()))
		return
	}

	stores, err := h.catalogService.GetStoresByManager(managerID)
	if err != nil {
		utils.LogError(err, "GetStoresByManager: Error from catalogService.GetStoresByManager")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stores.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stores)
}

// GetStoresByProduct handles GET /api/stores/product/:productId, listing
// the stores currently holding stock of the product.
func (h *CatalogHandler) GetStoresByProduct(c *gin.Context) {
	productID, err := utils.StrToInt64(c.Param("productId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format.", err.Error()))
		return
	}

	stores, err := h.catalogService.GetStoresByProduct(productID)
	if err != nil {
		utils.LogError(err, "GetStoresByProduct: Error from catalogService.GetStoresByProduct")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stores.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stores)
}
