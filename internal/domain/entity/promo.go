package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromoType determines how a promo's value is interpreted.
type PromoType string

const (
	// PromoPercentage discounts value percent of the subtotal.
	PromoPercentage PromoType = "percentage"
	// PromoFixed discounts a flat value amount.
	PromoFixed PromoType = "fixed"
)

// PromoCode is a discount code managed by merchants. Codes are stored and
// compared uppercase.
type PromoCode struct {
	ID              uuid.UUID
	Code            string
	Type            PromoType
	Value           float64
	Description     string
	Active          bool
	ExpirationDate  *time.Time // nil means never expires
	MinimumPurchase float64    // zero means no minimum
	UsageCount      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsExpired reports whether the code's expiration date has passed.
func (p *PromoCode) IsExpired(now time.Time) bool {
	return p.ExpirationDate != nil && now.After(*p.ExpirationDate)
}

// MeetsMinimum reports whether the subtotal satisfies the code's minimum
// purchase requirement.
func (p *PromoCode) MeetsMinimum(subtotal float64) bool {
	return subtotal >= p.MinimumPurchase
}

// DiscountFor returns the discount amount this code yields on the given
// subtotal, rounded to cents and capped at the subtotal so a total can never
// go negative.
func (p *PromoCode) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch p.Type {
	case PromoPercentage:
		discount = subtotal * p.Value / 100
	case PromoFixed:
		discount = p.Value
	}

	if discount > subtotal {
		discount = subtotal
	}

	return RoundCents(discount)
}

// AppliedPromo is the promo snapshot attached to a quote or order once a code
// has been validated against the cart.
type AppliedPromo struct {
	Code           string
	Type           PromoType
	Value          float64
	Description    string
	DiscountAmount float64
}
