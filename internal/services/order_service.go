// internal/services/order_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/freshcart/grocery-backend/internal/models"
	"github.com/freshcart/grocery-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type CheckoutItem struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Items []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	DeliveryStatus models.DeliveryStatus `json:"delivery_status" validate:"required"`
}

type OrderSearchParams struct {
	utils.PaginationParams
	UserID         *uuid.UUID             `json:"user_id,omitempty"`
	DeliveryStatus *models.DeliveryStatus `json:"delivery_status,omitempty"`
	CreatedAfter   *time.Time             `json:"created_after,omitempty"`
	CreatedBefore  *time.Time             `json:"created_before,omitempty"`
}

// orderLine is the shape new checkouts persist into Orders.Items. Historical
// rows carry older shapes; those are only ever read back by the analytics
// resolver, never rewritten.
type orderLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) CreateOrder(userID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	if user.Status != models.UserStatusActive {
		return nil, errors.New("account is not active")
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		lines := make([]orderLine, 0, len(req.Items))
		var total float64

		for _, item := range req.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %s not found", item.ProductID)
				}
				return fmt.Errorf("database error: %w", err)
			}

			if !product.Status {
				return fmt.Errorf("product %s is not available", product.Name)
			}
			if product.Stock < item.Quantity {
				return fmt.Errorf("insufficient stock for %s", product.Name)
			}

			price := product.Price * (1 - product.Discount/100)
			total += price * float64(item.Quantity)

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return fmt.Errorf("failed to update stock: %w", err)
			}

			lines = append(lines, orderLine{
				ProductID: product.ID.String(),
				Name:      product.Name,
				Price:     price,
				Quantity:  item.Quantity,
			})
		}

		itemsJSON, err := json.Marshal(lines)
		if err != nil {
			return fmt.Errorf("failed to encode order items: %w", err)
		}

		order = &models.Order{
			UserID:         userID,
			Username:       user.Username,
			TotalAmount:    total,
			DeliveryStatus: models.DeliveryStatusPending,
			Items:          datatypes.JSON(itemsJSON),
		}

		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("User").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) SearchOrders(params *OrderSearchParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{}).Preload("User")

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.DeliveryStatus != nil {
		query = query.Where("delivery_status = ?", *params.DeliveryStatus)
	}
	if params.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *params.CreatedAfter)
	}
	if params.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *params.CreatedBefore)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query = utils.ApplySort(query, params.PaginationParams, []string{"created_at", "total_amount", "delivery_status"})
	query = utils.ApplyPagination(query, params.PaginationParams)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search orders: %w", err)
	}

	return orders, total, nil
}

func (s *OrderService) ListUserOrders(userID uuid.UUID, params utils.PaginationParams) ([]models.Order, int64, error) {
	search := &OrderSearchParams{PaginationParams: params, UserID: &userID}
	return s.SearchOrders(search)
}

func (s *OrderService) UpdateDeliveryStatus(id uuid.UUID, req *UpdateOrderStatusRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !order.CanTransitionTo(req.DeliveryStatus) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", order.DeliveryStatus, req.DeliveryStatus)
	}

	order.DeliveryStatus = req.DeliveryStatus
	if err := s.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.db.Preload("User").First(&order, order.ID)

	return &order, nil
}
