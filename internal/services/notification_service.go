package services

import (
	"errors"
	"fmt"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"
)

var ErrNotificationNotFound = errors.New("notification not found")

// CreateNotificationRequest DTO
type CreateNotificationRequest struct {
	UserID  int64  `json:"userId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=info warning error success"`
}

// --- NotificationService Interface ---
type NotificationService interface {
	CreateNotification(req CreateNotificationRequest) (*models.Notification, error)
	GetNotificationsByUser(userID int64) ([]models.Notification, error)
	MarkRead(notificationID int64) (*models.Notification, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, userRepo: userRepo}
}

func (s *notificationService) CreateNotification(req CreateNotificationRequest) (*models.Notification, error) {
	if _, err := s.userRepo.GetUserByID(req.UserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user %d: %w", req.UserID, err)
	}

	n := models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	}
	created, err := s.notificationRepo.CreateNotification(&n)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return created, nil
}

func (s *notificationService) GetNotificationsByUser(userID int64) ([]models.Notification, error) {
	list, err := s.notificationRepo.GetNotificationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications for user %d: %w", userID, err)
	}
	return list, nil
}

func (s *notificationService) MarkRead(notificationID int64) (*models.Notification, error) {
	updated, err := s.notificationRepo.MarkNotificationRead(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return updated, nil
}
