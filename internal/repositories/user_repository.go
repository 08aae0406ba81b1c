package repositories

import (
	"strings"
	"sync"
	"time"

	"njaboot_connect_backend/internal/models"
)

// UserRepository defines the interface for user storage operations.
type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

// userRepository is the in-memory implementation. State lives for the
// process lifetime only; there is no persistence behind it.
type userRepository struct {
	mu     sync.RWMutex
	seq    int64
	byID   map[int64]models.User
	byMail map[string]int64
}

// NewUserRepository creates a new in-memory UserRepository.
func NewUserRepository() UserRepository {
	return &userRepository{
		byID:   make(map[int64]models.User),
		byMail: make(map[string]int64),
	}
}

func (r *userRepository) CreateUser(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.byMail[key]; exists {
		return nil, ErrDuplicateKey
	}

	r.seq++
	stored := *user
	stored.ID = r.seq
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.byID[stored.ID] = stored
	r.byMail[key] = stored.ID

	out := stored
	return &out, nil
}

func (r *userRepository) GetUserByID(id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := user
	return &out, nil
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byMail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.byID[id]
	out := user
	return &out, nil
}
