package services

import (
	"errors"
	"fmt"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"
)

var ErrLoyaltyNotFound = errors.New("loyalty record not found")

// AdjustLoyaltyRequest carries a signed delta; the caller decides whether
// it is an earn or a redeem.
type AdjustLoyaltyRequest struct {
	Points *int `json:"points" binding:"required"`
}

// --- LoyaltyService Interface ---
type LoyaltyService interface {
	GetLoyaltyByCustomer(customerID int64) (*models.LoyaltyPoints, error)
	AdjustPoints(customerID int64, delta int) (*models.LoyaltyPoints, error)
}

type loyaltyService struct {
	loyaltyRepo repositories.LoyaltyRepository
	userRepo    repositories.UserRepository
}

// NewLoyaltyService creates a new instance of LoyaltyService.
func NewLoyaltyService(loyaltyRepo repositories.LoyaltyRepository, userRepo repositories.UserRepository) LoyaltyService {
	return &loyaltyService{loyaltyRepo: loyaltyRepo, userRepo: userRepo}
}

func (s *loyaltyService) GetLoyaltyByCustomer(customerID int64) (*models.LoyaltyPoints, error) {
	lp, err := s.loyaltyRepo.GetLoyaltyByCustomer(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLoyaltyNotFound
		}
		return nil, fmt.Errorf("failed to get loyalty points: %w", err)
	}
	return lp, nil
}

// AdjustPoints applies the signed delta and recomputes the level. A missing
// record is created with the delta as the initial balance, so the first
// earn for a pre-loyalty customer works without setup.
func (s *loyaltyService) AdjustPoints(customerID int64, delta int) (*models.LoyaltyPoints, error) {
	if _, err := s.userRepo.GetUserByID(customerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to resolve customer %d: %w", customerID, err)
	}

	lp, err := s.loyaltyRepo.AdjustLoyaltyPoints(customerID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust loyalty points: %w", err)
	}
	return lp, nil
}
