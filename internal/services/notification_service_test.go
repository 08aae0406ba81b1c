package services

import (
	"testing"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationFixture(t *testing.T) (NotificationService, *models.User) {
	t.Helper()

	notificationRepo := repositories.NewNotificationRepository()
	userRepo := repositories.NewUserRepository()
	user, err := userRepo.CreateUser(&models.User{
		Username: "moussa", Email: "moussa@example.com", Role: models.RoleCustomer,
	})
	require.NoError(t, err)

	return NewNotificationService(notificationRepo, userRepo), user
}

func TestCreateNotificationRequiresKnownUser(t *testing.T) {
	svc, user := newNotificationFixture(t)

	n, err := svc.CreateNotification(CreateNotificationRequest{
		UserID: user.ID, Type: models.NotificationTypeInfo, Title: "Commande prête", Message: "Votre commande est prête.",
	})
	require.NoError(t, err)
	assert.False(t, n.IsRead)
	assert.False(t, n.CreatedAt.IsZero())

	_, err = svc.CreateNotification(CreateNotificationRequest{
		UserID: 404, Type: models.NotificationTypeInfo, Title: "x", Message: "y",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNotificationsNewestFirstAndMarkRead(t *testing.T) {
	svc, user := newNotificationFixture(t)

	first, err := svc.CreateNotification(CreateNotificationRequest{
		UserID: user.ID, Type: models.NotificationTypeInfo, Title: "Première", Message: "m1",
	})
	require.NoError(t, err)
	second, err := svc.CreateNotification(CreateNotificationRequest{
		UserID: user.ID, Type: models.NotificationTypeSuccess, Title: "Deuxième", Message: "m2",
	})
	require.NoError(t, err)

	list, err := svc.GetNotificationsByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	read, err := svc.MarkRead(first.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	_, err = svc.MarkRead(404)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
