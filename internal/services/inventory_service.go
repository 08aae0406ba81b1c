package services

import (
	"errors"
	"fmt"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"
)

var (
	ErrInventoryNotFound = errors.New("inventory row not found for product/store pair")
	ErrInventoryExists   = errors.New("inventory row already exists for product/store pair")
	ErrInvalidQuantity   = errors.New("quantity must be zero or positive")
)

// CreateInventoryRequest DTO
type CreateInventoryRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	StoreID   int64 `json:"storeId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"min=0"`
	MinStock  int   `json:"minStock" binding:"min=0"`
}

// UpdateInventoryRequest DTO. Pointer so that a submitted zero survives the
// required check.
type UpdateInventoryRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// --- InventoryService Interface ---
type InventoryService interface {
	GetStoreInventory(storeID int64) ([]models.InventoryDetail, error)
	CreateInventoryItem(req CreateInventoryRequest) (*models.Inventory, error)
	SetQuantity(productID, storeID int64, quantity int) (*models.Inventory, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	productRepo   repositories.ProductRepository
	storeRepo     repositories.StoreRepository
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(
	inventoryRepo repositories.InventoryRepository,
	productRepo repositories.ProductRepository,
	storeRepo repositories.StoreRepository,
) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		storeRepo:     storeRepo,
	}
}

// GetStoreInventory returns the store's inventory rows with their products
// joined in. Rows whose product no longer resolves are skipped rather than
// failing the whole listing.
func (s *inventoryService) GetStoreInventory(storeID int64) ([]models.InventoryDetail, error) {
	if _, err := s.storeRepo.GetStoreByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", storeID, err)
	}

	rows, err := s.inventoryRepo.GetInventoryByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory for store %d: %w", storeID, err)
	}

	details := []models.InventoryDetail{}
	for _, row := range rows {
		product, err := s.productRepo.GetProductByID(row.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve product %d: %w", row.ProductID, err)
		}
		details = append(details, models.InventoryDetail{Inventory: row, Product: *product})
	}
	return details, nil
}

func (s *inventoryService) CreateInventoryItem(req CreateInventoryRequest) (*models.Inventory, error) {
	if _, err := s.productRepo.GetProductByID(req.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to resolve product %d: %w", req.ProductID, err)
	}
	if _, err := s.storeRepo.GetStoreByID(req.StoreID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", req.StoreID, err)
	}

	item := models.Inventory{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Quantity:  req.Quantity,
		MinStock:  req.MinStock,
	}
	created, err := s.inventoryRepo.CreateInventoryItem(&item)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrInventoryExists
		}
		return nil, fmt.Errorf("failed to create inventory row: %w", err)
	}
	return created, nil
}

// SetQuantity updates the stock count for an existing (product, store) row.
// There is no upsert: a missing row is reported, never created here.
func (s *inventoryService) SetQuantity(productID, storeID int64, quantity int) (*models.Inventory, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	updated, err := s.inventoryRepo.UpdateInventory(productID, storeID, quantity)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	return updated, nil
}
