package impl

import (
	"context"
	"log/slog"
	"time"

	"kix/config"
	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/constants"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/domain/service"
	"kix/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	currency  string
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	currency := "USD"
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		currency:  currency,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConfirmPayment charges the card for a pending order and marks it paid.
// The settle step is a compare-and-set, so when two confirmations race only
// one transitions the order; the loser reloads and returns the paid order.
func (srv *paymentService) ConfirmPayment(ctx context.Context, session usecase.Session, input *usecase.ConfirmPaymentInput) (*entity.Order, error) {
	if !session.Identity.IsAuthenticated() {
		return nil, domainerrors.ErrForbidden.WithDetails("payment requires a signed-in account")
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order for payment")
	}

	if order.UserID != session.Identity.UserID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	// Replayed confirmation of a settled order is a success, not an error.
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return order, nil
	}

	result, err := srv.gateway.Charge(ctx, &service.ChargeRequest{
		OrderID:    order.ID.String(),
		Amount:     order.Total,
		Currency:   srv.currency,
		CardNumber: input.CardNumber,
		ExpMonth:   input.ExpMonth,
		ExpYear:    input.ExpYear,
		CVC:        input.CVC,
		HolderName: input.HolderName,
	})
	if err != nil {
		return nil, srv.handleChargeFailure(ctx, order, err)
	}

	paidAt := time.Now()
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().MarkOrderPaid(ctx, order.ID, result.Reference, paidAt); err != nil {
			return err
		}

		// The purchase is settled; the durable cart has been spent.
		if err := factory.NewCartRepository().DeleteCart(ctx, order.UserID); err != nil {
			return errors.Wrap(err, "failed to clear cart after payment")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotPending) {
			// Lost the settle race. The order is paid; surface it as success.
			return srv.orderRepo.FindOrderByID(ctx, order.ID)
		}

		return nil, errors.Wrap(err, "payment settlement transaction failed")
	}

	paid, err := srv.orderRepo.FindOrderByID(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload paid order")
	}

	publishOrderEvent(ctx, srv.log(ctx), srv.publisher, constants.OrderEventPaid, paid)

	srv.log(ctx).Info("Order payment settled",
		"orderId", paid.ID,
		"paymentRef", result.Reference,
		"total", paid.Total)

	return paid, nil
}

// handleChargeFailure records the declined attempt and maps the gateway
// error onto a user-facing one. The order stays retryable.
func (srv *paymentService) handleChargeFailure(ctx context.Context, order *entity.Order, chargeErr error) error {
	if markErr := srv.orderRepo.MarkOrderPaymentFailed(ctx, order.ID); markErr != nil &&
		!errors.Is(markErr, repository.ErrOrderNotPending) {
		srv.log(ctx).Error("Failed to record declined payment", "orderId", order.ID, "error", markErr)
	}

	switch {
	case errors.Is(chargeErr, service.ErrChargeDeclined):
		srv.log(ctx).Info("Card declined", "orderId", order.ID)

		return domainerrors.ErrPaymentDeclined
	case errors.Is(chargeErr, service.ErrChargeRequiresAction):
		return domainerrors.ErrPaymentDeclined.WithDetails("additional card authentication is required")
	case errors.Is(chargeErr, service.ErrInvalidCard):
		return domainerrors.ErrValidationFailed.WithDetails(chargeErr.Error())
	default:
		return errors.Wrap(chargeErr, "payment gateway charge failed")
	}
}

