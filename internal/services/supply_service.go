package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"njaboot_connect_backend/internal/models"
	"njaboot_connect_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCenterNotFound        = errors.New("purchasing center not found")
	ErrSupplyOrderNotFound   = errors.New("supply order not found")
	ErrInvalidSupplyStatus   = errors.New("invalid supply order status")
	ErrSupplyOrderHasNoItems = errors.New("supply order must contain at least one item")
)

// --- Data Transfer Objects (DTOs) ---

// CreateSupplyOrderItemRequest is one restocking line.
type CreateSupplyOrderItemRequest struct {
	ProductID int64           `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateSupplyOrderRequest is used for placing a wholesale restocking order
// against a purchasing center.
type CreateSupplyOrderRequest struct {
	StoreID  int64                          `json:"storeId" binding:"required"`
	CenterID int64                          `json:"centerId" binding:"required"`
	Notes    *string                        `json:"notes"`
	Items    []CreateSupplyOrderItemRequest `json:"items" binding:"required,dive"`
}

// UpdateSupplyOrderStatusRequest is used for updating a supply order status.
type UpdateSupplyOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- SupplyService Interface ---
type SupplyService interface {
	GetPurchasingCenters() ([]models.PurchasingCenter, error)
	GetCenterProducts(centerID int64) ([]models.CenterProductDetail, error)
	CreateSupplyOrder(req CreateSupplyOrderRequest) (*models.SupplyOrderDetail, error)
	GetSupplyOrdersByStore(storeID int64) ([]models.SupplyOrderDetail, error)
	UpdateSupplyOrderStatus(orderID int64, req UpdateSupplyOrderStatusRequest) (*models.SupplyOrder, error)
}

type supplyService struct {
	centerRepo  repositories.PurchasingCenterRepository
	supplyRepo  repositories.SupplyOrderRepository
	storeRepo   repositories.StoreRepository
	productRepo repositories.ProductRepository
}

// NewSupplyService creates a new instance of SupplyService.
func NewSupplyService(
	centerRepo repositories.PurchasingCenterRepository,
	supplyRepo repositories.SupplyOrderRepository,
	storeRepo repositories.StoreRepository,
	productRepo repositories.ProductRepository,
) SupplyService {
	return &supplyService{
		centerRepo:  centerRepo,
		supplyRepo:  supplyRepo,
		storeRepo:   storeRepo,
		productRepo: productRepo,
	}
}

func (s *supplyService) GetPurchasingCenters() ([]models.PurchasingCenter, error) {
	centers, err := s.centerRepo.GetCenters()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchasing centers: %w", err)
	}
	active := []models.PurchasingCenter{}
	for _, c := range centers {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

// GetCenterProducts returns a center's catalog offers with the products
// joined in. Offers whose product no longer resolves are skipped.
func (s *supplyService) GetCenterProducts(centerID int64) ([]models.CenterProductDetail, error) {
	if _, err := s.centerRepo.GetCenterByID(centerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCenterNotFound
		}
		return nil, fmt.Errorf("failed to resolve purchasing center %d: %w", centerID, err)
	}

	offers, err := s.centerRepo.GetCenterProducts(centerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get center products: %w", err)
	}

	details := []models.CenterProductDetail{}
	for _, offer := range offers {
		product, err := s.productRepo.GetProductByID(offer.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve product %d: %w", offer.ProductID, err)
		}
		details = append(details, models.CenterProductDetail{CenterProduct: offer, Product: *product})
	}
	return details, nil
}

// CreateSupplyOrder persists the order, then each item, as sequential
// storage calls without rollback, mirroring customer orders. Per-item
// TotalPrice is quantity × unit price computed here, at write time, and
// never recalculated later.
func (s *supplyService) CreateSupplyOrder(req CreateSupplyOrderRequest) (*models.SupplyOrderDetail, error) {
	if len(req.Items) == 0 {
		return nil, ErrSupplyOrderHasNoItems
	}
	if _, err := s.storeRepo.GetStoreByID(req.StoreID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", req.StoreID, err)
	}
	if _, err := s.centerRepo.GetCenterByID(req.CenterID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCenterNotFound
		}
		return nil, fmt.Errorf("failed to resolve purchasing center %d: %w", req.CenterID, err)
	}

	totalAmount := decimal.Zero
	itemsToCreate := make([]models.SupplyOrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		if _, err := s.productRepo.GetProductByID(itemReq.ProductID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, itemReq.ProductID)
			}
			return nil, fmt.Errorf("failed to resolve product %d: %w", itemReq.ProductID, err)
		}
		totalPrice := itemReq.UnitPrice.Mul(decimal.NewFromInt(int64(itemReq.Quantity)))
		totalAmount = totalAmount.Add(totalPrice)
		itemsToCreate = append(itemsToCreate, models.SupplyOrderItem{
			ProductID:  itemReq.ProductID,
			Quantity:   itemReq.Quantity,
			UnitPrice:  itemReq.UnitPrice,
			TotalPrice: totalPrice,
		})
	}

	order := models.SupplyOrder{
		OrderNumber: generateSupplyOrderNumber(),
		StoreID:     req.StoreID,
		CenterID:    req.CenterID,
		Status:      models.SupplyStatusPending,
		TotalAmount: totalAmount,
		Notes:       req.Notes,
	}
	created, err := s.supplyRepo.CreateSupplyOrder(&order)
	if err != nil {
		return nil, fmt.Errorf("failed to create supply order: %w", err)
	}

	items := make([]models.SupplyOrderItem, 0, len(itemsToCreate))
	for _, item := range itemsToCreate {
		item.OrderID = created.ID
		storedItem, err := s.supplyRepo.CreateSupplyOrderItem(&item)
		if err != nil {
			return nil, fmt.Errorf("failed to create supply order item (productId: %d): %w", item.ProductID, err)
		}
		items = append(items, *storedItem)
	}

	return &models.SupplyOrderDetail{SupplyOrder: *created, Items: items}, nil
}

func (s *supplyService) GetSupplyOrdersByStore(storeID int64) ([]models.SupplyOrderDetail, error) {
	if _, err := s.storeRepo.GetStoreByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %d: %w", storeID, err)
	}

	orders, err := s.supplyRepo.GetSupplyOrdersByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get supply orders for store %d: %w", storeID, err)
	}

	details := make([]models.SupplyOrderDetail, 0, len(orders))
	for _, order := range orders {
		items, err := s.supplyRepo.GetSupplyOrderItems(order.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get items for supply order %d: %w", order.ID, err)
		}
		details = append(details, models.SupplyOrderDetail{SupplyOrder: order, Items: items})
	}
	return details, nil
}

// UpdateSupplyOrderStatus validates the transition target and fills in the
// shipping artifacts the tracking UI expects: a tracking number when the
// order ships and a delivery date when it is delivered (if not already set).
func (s *supplyService) UpdateSupplyOrderStatus(orderID int64, req UpdateSupplyOrderStatusRequest) (*models.SupplyOrder, error) {
	if !isValidSupplyStatus(req.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSupplyStatus, req.Status)
	}

	current, err := s.supplyRepo.GetSupplyOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSupplyOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch supply order for status update: %w", err)
	}

	var trackingNumber *string
	var deliveryDate *time.Time
	if req.Status == models.SupplyStatusShipped && current.TrackingNumber == nil {
		tn := generateTrackingNumber()
		trackingNumber = &tn
	}
	if req.Status == models.SupplyStatusDelivered && current.DeliveryDate == nil {
		now := time.Now()
		deliveryDate = &now
	}

	updated, err := s.supplyRepo.UpdateSupplyOrderStatus(orderID, req.Status, trackingNumber, deliveryDate)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSupplyOrderNotFound
		}
		return nil, fmt.Errorf("failed to update supply order status: %w", err)
	}
	return updated, nil
}

const supplySuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateSupplyOrderNumber builds "SUP-<unix-millis>-<random suffix>".
// Uniqueness is probabilistic, not enforced.
func generateSupplyOrderNumber() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = supplySuffixAlphabet[rand.Intn(len(supplySuffixAlphabet))]
	}
	return fmt.Sprintf("SUP-%d-%s", time.Now().UnixMilli(), suffix)
}

func generateTrackingNumber() string {
	return "TRK-" + strings.ToUpper(uuid.NewString()[:8])
}

func isValidSupplyStatus(status string) bool {
	switch status {
	case models.SupplyStatusPending, models.SupplyStatusConfirmed, models.SupplyStatusShipped,
		models.SupplyStatusDelivered, models.SupplyStatusCancelled:
		return true
	default:
		return false
	}
}
