package handlers

import (
	"errors"
	"net/http"

	"njaboot_connect_backend/internal/services"
	"njaboot_connect_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler holds the notification service.
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// CreateNotification handles POST /api/notifications.
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req services.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateNotification: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	n, err := h.notificationService.CreateNotification(req)
	if err != nil {
		utils.LogError(err, "CreateNotification: Error from notificationService.CreateNotification")
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create notification.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, n)
}

// GetNotificationsByUser handles GET /api/notifications/:userId.
func (h *NotificationHandler) GetNotificationsByUser(c *gin.Context) {
	userID, err := utils.StrToInt64(c.Param("userId"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid user ID format.", err.Error()))
		return
	}

	list, err := h.notificationService.GetNotificationsByUser(userID)
	if err != nil {
		utils.LogError(err, "GetNotificationsByUser: Error from notificationService.GetNotificationsByUser")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch notifications.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, list)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	notificationID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid notification ID format.", err.Error()))
		return
	}

	n, err := h.notificationService.MarkRead(notificationID)
	if err != nil {
		utils.LogError(err, "MarkNotificationRead: Error from notificationService.MarkRead")
		if errors.Is(err, services.ErrNotificationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Notification not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to mark notification read.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, n)
}
