package service

import (
	"context"

	"kix/internal/errors"
)

// Gateway-level charge failures. The use case layer maps these onto
// user-facing errors.
var (
	// ErrChargeDeclined is returned when the card issuer declines the charge.
	ErrChargeDeclined = errors.New("charge declined")
	// ErrChargeRequiresAction is returned when the charge needs additional
	// authentication (e.g. 3-D Secure) before it can settle.
	ErrChargeRequiresAction = errors.New("charge requires additional authentication")
	// ErrInvalidCard is returned when the card details fail basic validation
	// before any charge is attempted.
	ErrInvalidCard = errors.New("invalid card details")
)

// ChargeRequest describes a payment to capture.
type ChargeRequest struct {
	OrderID    string
	Amount     float64 // In currency units, already rounded to cents.
	Currency   string
	CardNumber string
	ExpMonth   int
	ExpYear    int
	CVC        string
	HolderName string
}

// ChargeResult is returned for a successful capture.
type ChargeResult struct {
	Reference string // Gateway transaction reference.
}

// PaymentGateway defines the interface for capturing card payments.
// Implementations may be a real processor or a sandbox that recognizes
// published test card numbers.
type PaymentGateway interface {
	// Charge attempts to capture the payment. Declines and
	// authentication-required outcomes are reported via ErrChargeDeclined and
	// ErrChargeRequiresAction.
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}
