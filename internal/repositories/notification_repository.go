package repositories

import (
	"sort"
	"sync"
	"time"

	"njaboot_connect_backend/internal/models"
)

// NotificationRepository defines the interface for notification storage.
type NotificationRepository interface {
	CreateNotification(n *models.Notification) (*models.Notification, error)
	GetNotificationsByUser(userID int64) ([]models.Notification, error)
	MarkNotificationRead(id int64) (*models.Notification, error)
}

type notificationRepository struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]models.Notification
}

// NewNotificationRepository creates a new in-memory NotificationRepository.
func NewNotificationRepository() NotificationRepository {
	return &notificationRepository{byID: make(map[int64]models.Notification)}
}

func (r *notificationRepository) CreateNotification(n *models.Notification) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *n
	stored.ID = r.seq
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

// GetNotificationsByUser returns the user's notifications, newest first.
func (r *notificationRepository) GetNotificationsByUser(userID int64) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []models.Notification{}
	for _, n := range r.byID {
		if n.UserID == userID {
			list = append(list, n)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *notificationRepository) MarkNotificationRead(id int64) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	n.IsRead = true
	r.byID[id] = n

	out := n
	return &out, nil
}
