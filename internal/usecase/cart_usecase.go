package usecase

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput defines the data required to add a product to a cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	Size      float64
	Quantity  int
}

// CartLineRef identifies an existing cart line in update and remove calls.
type CartLineRef struct {
	ProductID uuid.UUID
	Size      float64
}

// CartUsecase defines the interface for cart operations. Every call routes to
// guest or durable storage based on the session's identity.
type CartUsecase interface {
	// GetCart retrieves the session's active cart.
	GetCart(ctx context.Context, session Session) (*entity.Cart, error)

	// AddItem validates the product and size, then adds the item to the cart.
	AddItem(ctx context.Context, session Session, input *AddCartItemInput) (*entity.Cart, error)

	// UpdateQuantity sets the quantity of an existing line. Quantities below
	// one are rejected; removal is always an explicit RemoveItem.
	UpdateQuantity(ctx context.Context, session Session, ref CartLineRef, quantity int) (*entity.Cart, error)

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, session Session, ref CartLineRef) (*entity.Cart, error)

	// ClearCart empties the session's cart.
	ClearCart(ctx context.Context, session Session) error
}
