// internal/models/order.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Order rows come from the storefront checkout. Items is kept as the raw
// JSON array the checkout wrote — line-item shapes changed several times over
// the platform's life (populated product objects, bare id strings, the
// productId/product_id variants), and the analytics layer resolves them
// rather than the database normalizing history it no longer controls.
type Order struct {
	BaseModel
	UserID         uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Username       string         `json:"username" gorm:"size:50"`
	TotalAmount    float64        `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	DeliveryStatus DeliveryStatus `json:"delivery_status" gorm:"type:varchar(20);default:'Pending';index"`
	Items          datatypes.JSON `json:"items" gorm:"type:jsonb"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// allowed delivery status transitions; terminal states have none
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending:        {DeliveryStatusConfirmed, DeliveryStatusCancelled},
	DeliveryStatusConfirmed:      {DeliveryStatusOutForDelivery, DeliveryStatusCancelled},
	DeliveryStatusOutForDelivery: {DeliveryStatusDelivered},
}

// CanTransitionTo reports whether the order's delivery status may move to
// next.
func (o *Order) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[o.DeliveryStatus] {
		if allowed == next {
			return true
		}
	}
	return false
}
