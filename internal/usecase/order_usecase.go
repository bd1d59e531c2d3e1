package usecase

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order history and fulfillment.
type OrderUsecase interface {
	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder retrieves one of the user's orders. Accessing another user's
	// order fails with an ownership error.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// GetReceiptQR generates the receipt QR code for one of the user's paid
	// orders.
	GetReceiptQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	// UpdateOrderStatus moves an order's fulfillment status. Merchant only;
	// illegal transitions are rejected.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
