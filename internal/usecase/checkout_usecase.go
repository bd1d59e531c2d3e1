package usecase

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the data required to place an order from the
// session's cart. CheckoutAttemptID is generated client-side when the
// checkout page loads; retried submissions reuse it so at most one order is
// created per attempt.
type PlaceOrderInput struct {
	CheckoutAttemptID uuid.UUID
	ShippingAddress   entity.ShippingAddress
	PromoCode         string
	PaymentMethod     string
	SaveAddress       bool
}

// CheckoutUsecase defines the interface for pricing and placing orders.
// Checkout requires an authenticated session.
type CheckoutUsecase interface {
	// QuoteCheckout prices the session's cart, applying the promo code if one
	// is given. The returned quote is what the shopper confirms.
	QuoteCheckout(ctx context.Context, session Session, promoCode string) (*entity.Quote, error)

	// PlaceOrder freezes the cart and quote into a pending order. Repeated
	// calls with the same attempt ID return the already-created order.
	PlaceOrder(ctx context.Context, session Session, input *PlaceOrderInput) (*entity.Order, error)
}
