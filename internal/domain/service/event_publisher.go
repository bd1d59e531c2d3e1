package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event published for downstream
// consumers (fulfillment, email, analytics).
type OrderEvent struct {
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
	EventType string  `json:"event_type"`           // constants.OrderEventCreated or OrderEventPaid
	OrderID   string  `json:"order_id"`
	UserID    string  `json:"user_id"`
	UserEmail string  `json:"user_email"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
	PromoCode string  `json:"promo_code,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
