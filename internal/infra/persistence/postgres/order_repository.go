package postgres

import (
	"context"
	"encoding/json"
	"time"

	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order. The (user_id, checkout_attempt_id)
// unique index turns a concurrent duplicate submission into
// ErrDuplicateCheckoutAttempt.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCheckoutAttempt
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindOrderByCheckoutAttempt retrieves the order recorded for a user's
// checkout attempt, if any.
func (repo *orderRepository) FindOrderByCheckoutAttempt(ctx context.Context, userID, attemptID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND checkout_attempt_id = ?", userID, attemptID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by checkout attempt")
	}

	return toOrderDomain(&orderM)
}

// FindOrdersByUser retrieves all orders for a user, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// MarkOrderPaid atomically settles the order's payment. The conditional
// update is the exactly-once guard: only one caller can move the order out
// of an unsettled state.
func (repo *orderRepository) MarkOrderPaid(ctx context.Context, id uuid.UUID, paymentRef string, paidAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status IN ?", id, []string{
			string(entity.PaymentStatusPending),
			string(entity.PaymentStatusFailed),
		}).
		Updates(map[string]any{
			"payment_status": string(entity.PaymentStatusPaid),
			"payment_ref":    paymentRef,
			"payment_date":   paidAt,
			"status":         string(entity.OrderStatusProcessing),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order paid")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotPending
	}

	return nil
}

// MarkOrderPaymentFailed records a declined payment attempt on an unsettled
// order.
func (repo *orderRepository) MarkOrderPaymentFailed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND payment_status IN ?", id, []string{
			string(entity.PaymentStatusPending),
			string(entity.PaymentStatusFailed),
		}).
		Updates(map[string]any{
			"payment_status": string(entity.PaymentStatusFailed),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark order payment failed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotPending
	}

	return nil
}

// UpdateOrderStatus updates the fulfillment status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mappers ---

func fromOrderDomain(order *entity.Order) (*model.OrderModel, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order items")
	}
	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal order shipping address")
	}

	orderM := &model.OrderModel{
		ID:                order.ID,
		UserID:            order.UserID,
		UserEmail:         order.UserEmail,
		CheckoutAttemptID: order.CheckoutAttemptID,
		Items:             itemsJSON,
		ShippingAddress:   addressJSON,
		Subtotal:          order.Subtotal,
		Discount:          order.Discount,
		Shipping:          order.Shipping,
		Tax:               order.Tax,
		Total:             order.Total,
		Status:            string(order.Status),
		PaymentStatus:     string(order.PaymentStatus),
		PaymentMethod:     order.PaymentMethod,
		PaymentRef:        order.PaymentRef,
		PaymentDate:       order.PaymentDate,
		EstimatedDelivery: order.EstimatedDelivery,
		OrderDate:         order.OrderDate,
		UpdatedAt:         order.UpdatedAt,
	}

	if order.Promo != nil {
		promoJSON, err := json.Marshal(order.Promo)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal order promo")
		}
		orderM.Promo = promoJSON
	}

	return orderM, nil
}

func toOrderDomain(orderM *model.OrderModel) (*entity.Order, error) {
	order := &entity.Order{
		ID:                orderM.ID,
		UserID:            orderM.UserID,
		UserEmail:         orderM.UserEmail,
		CheckoutAttemptID: orderM.CheckoutAttemptID,
		Subtotal:          orderM.Subtotal,
		Discount:          orderM.Discount,
		Shipping:          orderM.Shipping,
		Tax:               orderM.Tax,
		Total:             orderM.Total,
		Status:            entity.OrderStatus(orderM.Status),
		PaymentStatus:     entity.PaymentStatus(orderM.PaymentStatus),
		PaymentMethod:     orderM.PaymentMethod,
		PaymentRef:        orderM.PaymentRef,
		PaymentDate:       orderM.PaymentDate,
		EstimatedDelivery: orderM.EstimatedDelivery,
		OrderDate:         orderM.OrderDate,
		UpdatedAt:         orderM.UpdatedAt,
	}

	if err := json.Unmarshal(orderM.Items, &order.Items); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal order items")
	}
	if err := json.Unmarshal(orderM.ShippingAddress, &order.ShippingAddress); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal order shipping address")
	}
	if len(orderM.Promo) > 0 {
		var promo entity.AppliedPromo
		if err := json.Unmarshal(orderM.Promo, &promo); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal order promo")
		}
		order.Promo = &promo
	}

	return order, nil
}
