package repositories

import (
	"sync"

	"njaboot_connect_backend/internal/models"
)

// LoyaltyRepository defines the interface for loyalty-points storage. One
// row exists per customer.
type LoyaltyRepository interface {
	GetLoyaltyByCustomer(customerID int64) (*models.LoyaltyPoints, error)
	AdjustLoyaltyPoints(customerID int64, delta int) (*models.LoyaltyPoints, error)
}

type loyaltyRepository struct {
	mu         sync.RWMutex
	seq        int64
	byCustomer map[int64]models.LoyaltyPoints
}

// NewLoyaltyRepository creates a new in-memory LoyaltyRepository.
func NewLoyaltyRepository() LoyaltyRepository {
	return &loyaltyRepository{byCustomer: make(map[int64]models.LoyaltyPoints)}
}

func (r *loyaltyRepository) GetLoyaltyByCustomer(customerID int64) (*models.LoyaltyPoints, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lp, ok := r.byCustomer[customerID]
	if !ok {
		return nil, ErrNotFound
	}
	out := lp
	return &out, nil
}

// AdjustLoyaltyPoints adds delta (any signed value; the caller decides
// whether it is an earn or a redeem) to the customer's balance and
// recomputes the level. A missing row is created with delta as the initial
// balance.
func (r *loyaltyRepository) AdjustLoyaltyPoints(customerID int64, delta int) (*models.LoyaltyPoints, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lp, ok := r.byCustomer[customerID]
	if !ok {
		r.seq++
		lp = models.LoyaltyPoints{ID: r.seq, CustomerID: customerID, Points: delta}
	} else {
		lp.Points += delta
	}
	lp.Level = models.LoyaltyLevelForPoints(lp.Points)
	r.byCustomer[customerID] = lp

	out := lp
	return &out, nil
}
