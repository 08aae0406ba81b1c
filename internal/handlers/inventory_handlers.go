package handlers

import (
	"errors"
	"net/http"

	"njaboot_connect_backend/internal/services"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// GetStoreInventory handles GET /api/inventory/:storeId.
func (h *InventoryHandler) GetStoreInventory(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("storeId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	rows, err := h.inventoryService.GetStoreInventory(storeID)
	if err != nil {
		utils.LogError(err, "GetStoreInventory: Error from inventoryService.GetStoreInventory")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch inventory.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateInventoryItem handles POST /api/inventory. A second row for the
// same (product, store) pair is rejected with 409.
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req services.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateInventoryItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.CreateInventoryItem(req)
	if err != nil {
		utils.LogError(err, "CreateInventoryItem: Error from inventoryService.CreateInventoryItem")
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found.", err.Error()))
		case errors.Is(err, services.ErrStoreNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		case errors.Is(err, services.ErrInventoryExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Inventory row already exists for this product and store.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create inventory row.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateInventory handles PUT /api/inventory/:productId/:storeId. Updating
// a pair with no existing row returns 404 and creates nothing.
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	productID, err := utils.StrToInt64(c.Param("productId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid product ID format.", err.Error()))
		return
	}
	storeID, err := utils.StrToInt64(c.Param("storeId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	var req services.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateInventory: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.SetQuantity(productID, storeID, *req.Quantity)
	if err != nil {
		utils.LogError(err, "UpdateInventory: Error from inventoryService.SetQuantity")
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Quantity must be zero or positive.", err.Error()))
		case errors.Is(err, services.ErrInventoryNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory row not found for this product and store.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update inventory.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}
