package handlers

import (
	"errors"
	"net/http"

	"njaboot_connect_backend/internal/services"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LoyaltyHandler holds the loyalty service.
type LoyaltyHandler struct {
	loyaltyService services.LoyaltyService
}

// NewLoyaltyHandler creates a new LoyaltyHandler.
func NewLoyaltyHandler(ls services.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: ls}
}

// GetLoyaltyByCustomer handles GET /api/loyalty/:customerId.
func (h *LoyaltyHandler) GetLoyaltyByCustomer(c *gin.Context) {
	customerID, err := utils.StrToInt64(c.Param("customerId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	lp, err := h.loyaltyService.GetLoyaltyByCustomer(customerID)
	if err != nil {
		utils.LogError(err, "GetLoyaltyByCustomer: Error from loyaltyService.GetLoyaltyByCustomer")
		if errors.Is(err, services.ErrLoyaltyNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Loyalty record not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch loyalty points.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, lp)
}

// AdjustLoyaltyPoints handles POST /api/loyalty/:customerId/adjust. The
// body carries a signed delta; earn or redeem is the caller's call.
func (h *LoyaltyHandler) AdjustLoyaltyPoints(c *gin.Context) {
	customerID, err := utils.StrToInt64(c.Param("customerId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	var req services.AdjustLoyaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AdjustLoyaltyPoints: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	lp, err := h.loyaltyService.AdjustPoints(customerID, *req.Points)
	if err != nil {
		utils.LogError(err, "AdjustLoyaltyPoints: Error from loyaltyService.AdjustPoints")
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to adjust loyalty points.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, lp)
}
