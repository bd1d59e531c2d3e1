package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks fulfillment progress.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus tracks the payment lifecycle independently of fulfillment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// fulfillmentTransitions lists the allowed status moves. Terminal states have
// no successors.
var fulfillmentTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionTo reports whether the fulfillment status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range fulfillmentTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// OrderItem is one purchased line, frozen from the cart at checkout.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Brand     string
	Size      float64
	Quantity  int
	Price     float64
	ImageURL  string
}

// Order is a placed checkout. The five pricing figures are frozen from the
// quote confirmed by the shopper; CheckoutAttemptID deduplicates retried
// submissions of the same checkout.
type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	UserEmail         string
	CheckoutAttemptID uuid.UUID
	Items             []OrderItem
	ShippingAddress   ShippingAddress
	Promo             *AppliedPromo
	Subtotal          float64
	Discount          float64
	Shipping          float64
	Tax               float64
	Total             float64
	Status            OrderStatus
	PaymentStatus     PaymentStatus
	PaymentMethod     string
	PaymentRef        string
	PaymentDate       *time.Time
	EstimatedDelivery time.Time
	OrderDate         time.Time
	UpdatedAt         time.Time
}

// ItemCount returns the total number of units in the order.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}

	return count
}

// OrderItemsFromCart freezes cart lines into order items.
func OrderItemsFromCart(cart *Cart) []OrderItem {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Brand:     line.Brand,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     line.Price,
			ImageURL:  line.ImageURL,
		})
	}

	return items
}
