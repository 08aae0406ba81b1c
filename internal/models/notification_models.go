package models

import "time"

// Notification kinds shown by the UI.
const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeError   = "error"
	NotificationTypeSuccess = "success"
)

// Notification is a message addressed to one user.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId" binding:"required"`
	Title     string    `json:"title" binding:"required"`
	Message   string    `json:"message" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=info warning error success"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
