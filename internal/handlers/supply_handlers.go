package handlers

import (
	"errors"
	"net/http"

	"njaboot_connect_backend/internal/services"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SupplyHandler holds the supply service (purchasing centers, center
// catalogs, supply orders).
type SupplyHandler struct {
	supplyService services.SupplyService
}

// NewSupplyHandler creates a new SupplyHandler.
func NewSupplyHandler(ss services.SupplyService) *SupplyHandler {
	return &SupplyHandler{supplyService: ss}
}

// GetPurchasingCenters handles GET /api/purchasing-centers.
func (h *SupplyHandler) GetPurchasingCenters(c *gin.Context) {
	centers, err := h.supplyService.GetPurchasingCenters()
	if err != nil {
		utils.LogError(err, "GetPurchasingCenters: Error from supplyService.GetPurchasingCenters")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch purchasing centers.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, centers)
}

// GetCenterProducts handles GET /api/center-products/:centerId.
func (h *SupplyHandler) GetCenterProducts(c *gin.Context) {
	centerID, err := utils.StrToInt64(c.Param("centerId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid center ID format.", err.Error()))
		return
	}

	offers, err := h.supplyService.GetCenterProducts(centerID)
	if err != nil {
		utils.LogError(err, "GetCenterProducts: Error from supplyService.GetCenterProducts")
		if errors.Is(err, services.ErrCenterNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Purchasing center not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch center products.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, offers)
}

// CreateSupplyOrder handles POST /api/supply-orders.
func (h *SupplyHandler) CreateSupplyOrder(c *gin.Context) {
	var req services.CreateSupplyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSupplyOrder: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.supplyService.CreateSupplyOrder(req)
	if err != nil {
		utils.LogError(err, "CreateSupplyOrder: Error from supplyService.CreateSupplyOrder")
		switch {
		case errors.Is(err, services.ErrStoreNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		case errors.Is(err, services.ErrCenterNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Purchasing center not found.", err.Error()))
		case errors.Is(err, services.ErrProductNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "One or more products not found.", err.Error()))
		case errors.Is(err, services.ErrSupplyOrderHasNoItems):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create supply order.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetSupplyOrdersByStore handles GET /api/supply-orders/:storeId.
func (h *SupplyHandler) GetSupplyOrdersByStore(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("storeId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	orders, err := h.supplyService.GetSupplyOrdersByStore(storeID)
	if err != nil {
		utils.LogError(err, "GetSupplyOrdersByStore: Error from supplyService.GetSupplyOrdersByStore")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch supply orders.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateSupplyOrderStatus handles PATCH /api/supply-orders/:id/status.
func (h *SupplyHandler) UpdateSupplyOrderStatus(c *gin.Context) {
	orderID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid supply order ID format.", err.Error()))
		return
	}

	var req services.UpdateSupplyOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateSupplyOrderStatus: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.supplyService.UpdateSupplyOrderStatus(orderID, req)
	if err != nil {
		utils.LogError(err, "UpdateSupplyOrderStatus: Error from supplyService.UpdateSupplyOrderStatus")
		switch {
		case errors.Is(err, services.ErrSupplyOrderNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Supply order not found.", err.Error()))
		case errors.Is(err, services.ErrInvalidSupplyStatus):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid supply order status provided.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update supply order status.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, order)
}
