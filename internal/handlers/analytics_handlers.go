package handlers

import (
	"errors"
	"net/http"

	"njaboot_connect_backend/internal/services"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler holds the analytics service.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(as services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: as}
}

// GetDashboardSummary handles GET /api/analytics/dashboard/:storeId.
func (h *AnalyticsHandler) GetDashboardSummary(c *gin.Context) {
	storeID, err := utils.StrToInt64(c.Param("storeId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid store ID format.", err.Error()))
		return
	}

	summary, err := h.analyticsService.GetDashboardSummary(storeID)
	if err != nil {
		utils.LogError(err, "GetDashboardSummary: Error from analyticsService.GetDashboardSummary")
		if errors.Is(err, services.ErrStoreNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Store not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard summary.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
