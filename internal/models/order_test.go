// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    DeliveryStatus
		to      DeliveryStatus
		allowed bool
	}{
		{"pending to confirmed", DeliveryStatusPending, DeliveryStatusConfirmed, true},
		{"pending to cancelled", DeliveryStatusPending, DeliveryStatusCancelled, true},
		{"pending to out for delivery skips confirmed", DeliveryStatusPending, DeliveryStatusOutForDelivery, false},
		{"pending to delivered skips everything", DeliveryStatusPending, DeliveryStatusDelivered, false},
		{"confirmed to out for delivery", DeliveryStatusConfirmed, DeliveryStatusOutForDelivery, true},
		{"confirmed to cancelled", DeliveryStatusConfirmed, DeliveryStatusCancelled, true},
		{"confirmed back to pending", DeliveryStatusConfirmed, DeliveryStatusPending, false},
		{"out for delivery to delivered", DeliveryStatusOutForDelivery, DeliveryStatusDelivered, true},
		{"out for delivery cannot cancel", DeliveryStatusOutForDelivery, DeliveryStatusCancelled, false},
		{"delivered is terminal", DeliveryStatusDelivered, DeliveryStatusPending, false},
		{"cancelled is terminal", DeliveryStatusCancelled, DeliveryStatusConfirmed, false},
		{"no self transition", DeliveryStatusPending, DeliveryStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{DeliveryStatus: tt.from}
			assert.Equal(t, tt.allowed, order.CanTransitionTo(tt.to))
		})
	}
}
