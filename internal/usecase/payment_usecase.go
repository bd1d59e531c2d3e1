package usecase

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// ConfirmPaymentInput defines the card details submitted to settle a pending
// order.
type ConfirmPaymentInput struct {
	OrderID    uuid.UUID
	CardNumber string
	ExpMonth   int
	ExpYear    int
	CVC        string
	HolderName string
}

// PaymentUsecase defines the interface for settling order payments.
type PaymentUsecase interface {
	// ConfirmPayment charges the card for a pending order and marks it paid.
	// The pending-to-paid move is atomic, so concurrent confirmations settle
	// the order exactly once; a confirmation that loses the race still
	// returns the paid order. The session's cart is cleared on success.
	ConfirmPayment(ctx context.Context, session Session, input *ConfirmPaymentInput) (*entity.Order, error)
}
