package repositories

import (
	"sort"
	"sync"

	"njaboot_connect_backend/internal/models"
)

// CategoryRepository defines the interface for category storage operations.
type CategoryRepository interface {
	CreateCategory(category *models.Category) (*models.Category, error)
	GetCategories() ([]models.Category, error)
}

type categoryRepository struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]models.Category
}

// NewCategoryRepository creates a new in-memory CategoryRepository.
func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{byID: make(map[int64]models.Category)}
}

func (r *categoryRepository) CreateCategory(category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *category
	stored.ID = r.seq
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *categoryRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, 0, len(r.byID))
	for _, c := range r.byID {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// ProductRepository defines the interface for product storage operations.
type ProductRepository interface {
	CreateProduct(product *models.Product) (*models.Product, error)
	GetProductByID(id int64) (*models.Product, error)
	GetProducts(filters models.ProductFilters) ([]models.Product, error)
	UpdateProduct(id int64, update models.ProductUpdate) (*models.Product, error)
}

type productRepository struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]models.Product
}

// NewProductRepository creates a new in-memory ProductRepository.
func NewProductRepository() ProductRepository {
	return &productRepository{byID: make(map[int64]models.Product)}
}

func (r *productRepository) CreateProduct(product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *product
	stored.ID = r.seq
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *productRepository) GetProductByID(id int64) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := product
	return &out, nil
}

func (r *productRepository) GetProducts(filters models.ProductFilters) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.byID {
		if filters.CategoryID != nil {
			if p.CategoryID == nil || *p.CategoryID != *filters.CategoryID {
				continue
			}
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// UpdateProduct shallow-merges the provided fields into the stored record.
// Fields left nil in the update retain their prior values.
func (r *productRepository) UpdateProduct(id int64, update models.ProductUpdate) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.CategoryID != nil {
		product.CategoryID = update.CategoryID
	}
	if update.ImageURL != nil {
		product.ImageURL = update.ImageURL
	}
	if update.Unit != nil {
		product.Unit = *update.Unit
	}
	if update.IsActive != nil {
		product.IsActive = *update.IsActive
	}

	r.byID[id] = product
	out := product
	return &out, nil
}
