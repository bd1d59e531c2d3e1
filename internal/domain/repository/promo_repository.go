package repository

import (
	"context"

	"kix/internal/domain/entity"
	"kix/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for promo persistence.
var (
	// ErrPromoNotFound is returned when a promo code is not found.
	ErrPromoNotFound = errors.New("promo code not found")
	// ErrDuplicatePromoCode is returned when the code string is already taken.
	ErrDuplicatePromoCode = errors.New("promo code already exists")
)

// PromoRepository defines the interface for promo code database operations.
type PromoRepository interface {
	// CreatePromo persists a new promo code.
	CreatePromo(ctx context.Context, promo *entity.PromoCode) error

	// FindPromoByCode retrieves a promo by its code string. Lookup is
	// case-insensitive; codes are stored uppercase.
	FindPromoByCode(ctx context.Context, code string) (*entity.PromoCode, error)

	// ListPromos retrieves all promo codes, newest first.
	ListPromos(ctx context.Context) ([]*entity.PromoCode, error)

	// UpdatePromo persists changes to an existing promo code.
	UpdatePromo(ctx context.Context, promo *entity.PromoCode) error

	// IncrementUsage bumps the usage counter after a successful checkout.
	IncrementUsage(ctx context.Context, id uuid.UUID) error

	// DeletePromo removes a promo code.
	DeletePromo(ctx context.Context, id uuid.UUID) error
}
