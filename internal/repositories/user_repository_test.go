package repositories

import (
	"testing"

	"njaboot_connect_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository()

	first, err := repo.CreateUser(&models.User{Username: "a", Email: "a@example.com", Role: models.RoleCustomer})
	require.NoError(t, err)
	second, err := repo.CreateUser(&models.User{Username: "b", Email: "b@example.com", Role: models.RoleCustomer})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepository()

	original, err := repo.CreateUser(&models.User{
		Username:  "fatou",
		Email:     "fatou@example.com",
		FirstName: "Fatou",
		Role:      models.RoleCustomer,
	})
	require.NoError(t, err)

	_, err = repo.CreateUser(&models.User{
		Username:  "impostor",
		Email:     "fatou@example.com",
		FirstName: "Other",
		Role:      models.RoleCustomer,
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// the original row must be untouched by the rejected insert
	stored, err := repo.GetUserByEmail("fatou@example.com")
	require.NoError(t, err)
	assert.Equal(t, original.ID, stored.ID)
	assert.Equal(t, "Fatou", stored.FirstName)
}

func TestCreateUserEmailUniquenessIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.CreateUser(&models.User{Username: "a", Email: "Fatou@Example.com", Role: models.RoleCustomer})
	require.NoError(t, err)

	_, err = repo.CreateUser(&models.User{Username: "b", Email: "fatou@example.com", Role: models.RoleCustomer})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestGetUserByIDNotFound(t *testing.T) {
	repo := NewUserRepository()

	_, err := repo.GetUserByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
