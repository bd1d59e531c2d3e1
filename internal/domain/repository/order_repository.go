package repository

import (
	"context"
	"time"

	"kix/internal/domain/entity"
	"kix/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNotPending is returned when a payment update targets an order
	// whose payment is no longer pending.
	ErrOrderNotPending = errors.New("order payment is not pending")
	// ErrDuplicateCheckoutAttempt is returned when an order with the same
	// checkout attempt ID already exists for the user.
	ErrDuplicateCheckoutAttempt = errors.New("checkout attempt already recorded")
)

// OrderRepository defines the interface for order database operations.
type OrderRepository interface {
	// CreateOrder persists a new order. Returns ErrDuplicateCheckoutAttempt
	// when the (user, checkout attempt) pair already exists.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByCheckoutAttempt retrieves the order recorded for a user's
	// checkout attempt, if any.
	FindOrderByCheckoutAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves all orders for a user, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// MarkOrderPaid atomically settles the order's payment and records the
	// payment reference and time. It is a compare-and-set over the unsettled
	// states (pending or failed): when the order is already paid it changes
	// nothing and returns ErrOrderNotPending.
	MarkOrderPaid(ctx context.Context, id uuid.UUID, paymentRef string, paidAt time.Time) error

	// MarkOrderPaymentFailed records a declined payment attempt. The order
	// stays retryable; returns ErrOrderNotPending when already paid.
	MarkOrderPaymentFailed(ctx context.Context, id uuid.UUID) error

	// UpdateOrderStatus updates the fulfillment status of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
