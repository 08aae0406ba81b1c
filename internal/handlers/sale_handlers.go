package handlers

import (
	"errors"
	"net/http"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/services"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SaleHandler holds the sale service.
type SaleHandler struct {
	saleService services.SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss services.SaleService) *SaleHandler {
	return &SaleHandler{saleService: ss}
}

// CreateSale handles POST /api/sales.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateSale: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	sale, err := h.saleService.CreateSale(req)
	if err != nil {
		utils.LogError(err, "CreateSale: Error from saleService.CreateSale")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record sale.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// GetSalesByStore handles GET /api/sales/:storeId with optional
// startDate/endDate bounds (YYYY-MM-DD, inclusive).
func (h *SaleHandler) GetSalesByStore(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("storeId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	var filters models.SaleFilters
	if startDate := c.Query("startDate"); startDate != "" {
		filters.StartDate = &startDate
	}
	if endDate := c.Query("endDate"); endDate != "" {
		filters.EndDate = &endDate
	}

	sales, err := h.saleService.GetSalesByStore(storeID, filters)
	if err != nil {
		utils.LogError(err, "GetSalesByStore: Error from saleService.GetSalesByStore")
		switch {
		case errors.Is(err, services.ErrStoreNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		case errors.Is(err, services.ErrInvalidDateFilter):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid date format. Use YYYY-MM-DD.", err.Error()))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch sales.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, sales)
}
