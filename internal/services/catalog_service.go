package services

import (
	"errors"
	"fmt"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")
)

// CreateCategoryRequest DTO
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// CreateProductRequest DTO
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *int64          `json:"categoryId"`
	ImageURL    *string         `json:"imageUrl"`
	Unit        string          `json:"unit" binding:"required"`
}

// --- CatalogService Interface ---
// CatalogService covers the storefront reference data: categories, products
// and stores.
type CatalogService interface {
	CreateCategory(req CreateCategoryRequest) (*models.Category, error)
	GetCategories() ([]models.Category, error)

	CreateProduct(req CreateProductRequest) (*models.Product, error)
	GetProducts(filters models.ProductFilters) ([]models.Product, error)
	GetProductByID(productID int64) (*models.Product, error)
	UpdateProduct(productID int64, update models.ProductUpdate) (*models.Product, error)

	GetStores() ([]models.Store, error)
	GetStoreByID(storeID int64) (*models.Store, error)
	GetStoresByManager(managerID int64) ([]models.Store, error)
	GetStoresByProduct(productID int64) ([]models.Store, error)
}

type catalogService struct {
	categoryRepo  repositories.CategoryRepository
	productRepo   repositories.ProductRepository
	storeRepo     repositories.StoreRepository
	inventoryRepo repositories.InventoryRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	productRepo repositories.ProductRepository,
	storeRepo repositories.StoreRepository,
	inventoryRepo repositories.InventoryRepository,
) CatalogService {
	return &catalogService{
		categoryRepo:  categoryRepo,
		productRepo:   productRepo,
		storeRepo:     storeRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *catalogService) CreateCategory(req CreateCategoryRequest) (*models.Category, error) {
	category := models.Category{Name: req.Name, Description: req.Description}
	created, err := s.categoryRepo.CreateCategory(&category)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

func (s *catalogService) GetCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Unit:        req.Unit,
		IsActive:    true,
	}
	created, err := s.productRepo.CreateProduct(&product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// GetProducts lists active products, optionally narrowed to one category.
// Deactivated products stay reachable by ID (existing orders join them) but
// disappear from the listing.
func (s *catalogService) GetProducts(filters models.ProductFilters) ([]models.Product, error) {
	products, err := s.productRepo.GetProducts(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	active := []models.Product{}
	for _, p := range products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *catalogService) GetProductByID(productID int64) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(productID int64, update models.ProductUpdate) (*models.Product, error) {
	updated, err := s.productRepo.UpdateProduct(productID, update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

func (s *catalogService) GetStores() ([]models.Store, error) {
	stores, err := s.storeRepo.GetStores()
	if err != nil {
		return nil, fmt.Errorf("failed to get stores: %w", err)
	}
	active := []models.Store{}
	for _, st := range stores {
		if st.IsActive {
			active = append(active, st)
		}
	}
	return active, nil
}

func (s *catalogService) GetStoreByID(storeID int64) (*models.Store, error) {
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store by ID: %w", err)
	}
	return store, nil
}

func (s *catalogService) GetStoresByManager(managerID int64) ([]models.Store, error) {
	stores, err := s.storeRepo.GetStoresByManager(managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stores by manager: %w", err)
	}
	return stores, nil
}

// GetStoresByProduct returns the distinct stores holding a positive
// quantity of the product, for the "where can I buy this" product page.
func (s *catalogService) GetStoresByProduct(productID int64) ([]models.Store, error) {
	storeIDs, err := s.inventoryRepo.GetStoreIDsWithProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory for product %d: %w", productID, err)
	}

	stores := []models.Store{}
	for _, id := range storeIDs {
		store, err := s.storeRepo.GetStoreByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue // dangling inventory row, skip
			}
			return nil, fmt.Errorf("failed to resolve store %d: %w", id, err)
		}
		stores = append(stores, *store)
	}
	return stores, nil
}
