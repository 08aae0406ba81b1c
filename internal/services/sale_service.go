package services

import (
	"errors"
	"fmt"
	"time"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrInvalidDateFilter = errors.New("invalid date filter format, expected YYYY-MM-DD")

const dateFilterLayout = "2006-01-02"

// CreateSaleRequest records an in-person point-of-sale transaction.
type CreateSaleRequest struct {
	StoreID       int64             `json:"storeId" binding:"required"`
	ManagerID     int64             `json:"managerId" binding:"required"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod" binding:"required,oneof=cash card mobile"`
	Items         []models.SaleItem `json:"items" binding:"required,dive"`
}

// --- SaleService Interface ---
type SaleService interface {
	CreateSale(req CreateSaleRequest) (*models.Sale, error)
	GetSalesByStore(storeID int64, filters models.SaleFilters) ([]models.Sale, error)
}

type saleService struct {
	saleRepo  repositories.SaleRepository
	storeRepo repositories.StoreRepository
}

// NewSaleService creates a new instance of SaleService.
func NewSaleService(saleRepo repositories.SaleRepository, storeRepo repositories.StoreRepository) SaleService {
	return &saleService{saleRepo: saleRepo, storeRepo: storeRepo}
}

func (s *saleService) CreateSale(req CreateSaleRequest) (*models.Sale, error) {
	if _, err := s.storeRepo.GetStoreByID(req.StoreID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", req.StoreID, err)
	}

	totalAmount := req.TotalAmount
	if totalAmount.IsZero() {
		for _, it := range req.Items {
			totalAmount = totalAmount.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	sale := models.Sale{
		StoreID:       req.StoreID,
		ManagerID:     req.ManagerID,
		TotalAmount:   totalAmount,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
	}
	created, err := s.saleRepo.CreateSale(&sale)
	if err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	return created, nil
}

// GetSalesByStore lists the store's sales, optionally bounded by an
// inclusive startDate/endDate pair of local calendar days.
func (s *saleService) GetSalesByStore(storeID int64, filters models.SaleFilters) ([]models.Sale, error) {
	if _, err := s.storeRepo.GetStoreByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", storeID, err)
	}

	var start, end *time.Time
	if filters.StartDate != nil {
		t, err := time.ParseInLocation(dateFilterLayout, *filters.StartDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDateFilter, *filters.StartDate)
		}
		start = &t
	}
	if filters.EndDate != nil {
		t, err := time.ParseInLocation(dateFilterLayout, *filters.EndDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDateFilter, *filters.EndDate)
		}
		// endDate is inclusive: advance to the next local midnight.
		bound := t.AddDate(0, 0, 1)
		end = &bound
	}

	sales, err := s.saleRepo.GetSalesByStore(storeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales for store %d: %w", storeID, err)
	}
	return sales, nil
}
