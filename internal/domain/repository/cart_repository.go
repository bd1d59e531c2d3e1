package repository

import (
	"context"

	"kix/internal/domain/entity"
	"kix/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no stored cart.
	ErrCartNotFound = errors.New("cart not found")
)

// CartRepository defines the interface for durable (account-scoped) cart storage.
type CartRepository interface {
	// FindCartByUser retrieves the stored cart for a user.
	// Returns ErrCartNotFound when the user has never saved a cart.
	FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// SaveCart replaces the user's stored cart with the given snapshot.
	SaveCart(ctx context.Context, userID uuid.UUID, cart *entity.Cart) error

	// DeleteCart removes the user's stored cart.
	DeleteCart(ctx context.Context, userID uuid.UUID) error
}
