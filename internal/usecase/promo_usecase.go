package usecase

import (
	"context"
	"time"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// ValidatePromoInput defines the data required to validate a promo code
// against a cart.
type ValidatePromoInput struct {
	Code     string
	Subtotal float64
}

// PromoInput defines the data required to create or update a promo code.
type PromoInput struct {
	Code            string
	Type            entity.PromoType
	Value           float64
	Description     string
	Active          bool
	ExpirationDate  *time.Time
	MinimumPurchase float64
}

// PromoUsecase defines the interface for promo validation and merchant promo
// management.
type PromoUsecase interface {
	// ValidatePromo checks a code against the cart subtotal. The checks run
	// in a fixed order: existence, active flag, expiration, minimum purchase.
	// On success it returns the promo snapshot with its computed discount.
	ValidatePromo(ctx context.Context, input *ValidatePromoInput) (*entity.AppliedPromo, error)

	// CreatePromo adds a new promo code. Merchant only.
	CreatePromo(ctx context.Context, input *PromoInput) (*entity.PromoCode, error)

	// ListPromos retrieves all promo codes, newest first. Merchant only.
	ListPromos(ctx context.Context) ([]*entity.PromoCode, error)

	// UpdatePromo replaces a promo code's fields. Merchant only.
	UpdatePromo(ctx context.Context, id uuid.UUID, input *PromoInput) (*entity.PromoCode, error)

	// DeletePromo removes a promo code. Merchant only.
	DeletePromo(ctx context.Context, id uuid.UUID) error
}
