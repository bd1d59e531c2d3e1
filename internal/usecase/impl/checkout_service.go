package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kix/config"
	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/constants"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/domain/service"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// estimatedDeliveryWindow is how far out new orders promise delivery.
const estimatedDeliveryWindow = 7 * 24 * time.Hour

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	promoUC   usecase.PromoUsecase
	publisher service.EventPublisher
	rules     entity.PricingRules
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	PromoUC   usecase.PromoUsecase
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	taxRate, flatShipping, threshold := params.Config.PricingRules()

	return &checkoutService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		promoUC:   params.PromoUC,
		publisher: params.Publisher,
		rules: entity.PricingRules{
			TaxRate:               taxRate,
			FlatShipping:          flatShipping,
			FreeShippingThreshold: threshold,
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadCheckoutCart loads the authenticated shopper's durable cart and
// rejects empty carts.
func (srv *checkoutService) loadCheckoutCart(ctx context.Context, session usecase.Session) (*entity.Cart, error) {
	if !session.Identity.IsAuthenticated() {
		return nil, domainerrors.ErrForbidden.WithDetails("checkout requires a signed-in account")
	}

	cart, err := srv.cartRepo.FindCartByUser(ctx, session.Identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartEmpty
		}

		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}

	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	return cart, nil
}

// quote prices a cart, validating the promo code against the cart subtotal
// when one is given.
func (srv *checkoutService) quote(ctx context.Context, cart *entity.Cart, promoCode string) (*entity.Quote, error) {
	var applied *entity.AppliedPromo
	if promoCode != "" {
		var err error
		applied, err = srv.promoUC.ValidatePromo(ctx, &usecase.ValidatePromoInput{
			Code:     promoCode,
			Subtotal: cart.Subtotal(),
		})
		if err != nil {
			return nil, err
		}
	}

	q := entity.PriceCart(cart, srv.rules, applied)

	return &q, nil
}

// QuoteCheckout prices the session's cart, applying the promo code if one is
// given.
func (srv *checkoutService) QuoteCheckout(ctx context.Context, session usecase.Session, promoCode string) (*entity.Quote, error) {
	cart, err := srv.loadCheckoutCart(ctx, session)
	if err != nil {
		return nil, err
	}

	return srv.quote(ctx, cart, promoCode)
}

// PlaceOrder freezes the cart and quote into a pending order. The attempt ID
// makes retried submissions return the order already created, never a second
// one.
func (srv *checkoutService) PlaceOrder(ctx context.Context, session usecase.Session, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.CheckoutAttemptID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("checkout attempt ID is required")
	}

	// All address failures are reported together so the shopper fixes the
	// form in one pass.
	if problems := input.ShippingAddress.Problems(); len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	cart, err := srv.loadCheckoutCart(ctx, session)
	if err != nil {
		return nil, err
	}
	userID := session.Identity.UserID

	// A resubmitted attempt returns the already-created order.
	existing, err := srv.orderRepo.FindOrderByCheckoutAttempt(ctx, userID, input.CheckoutAttemptID)
	if err != nil && !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to check checkout attempt")
	}
	if existing != nil {
		srv.log(ctx).Info("Checkout attempt replayed, returning existing order",
			"orderId", existing.ID, "attemptId", input.CheckoutAttemptID)

		return existing, nil
	}

	quote, err := srv.quote(ctx, cart, input.PromoCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:                uuid.New(),
		UserID:            userID,
		UserEmail:         input.ShippingAddress.Email,
		CheckoutAttemptID: input.CheckoutAttemptID,
		Items:             entity.OrderItemsFromCart(cart),
		ShippingAddress:   input.ShippingAddress,
		Promo:             quote.Promo,
		Subtotal:          quote.Subtotal,
		Discount:          quote.Discount,
		Shipping:          quote.Shipping,
		Tax:               quote.Tax,
		Total:             quote.Total,
		Status:            entity.OrderStatusPending,
		PaymentStatus:     entity.PaymentStatusPending,
		PaymentMethod:     input.PaymentMethod,
		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
		OrderDate:         now,
		UpdatedAt:         now,
	}

	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if order.Promo != nil {
			promo, err := factory.NewPromoRepository().FindPromoByCode(ctx, order.Promo.Code)
			if err != nil {
				return errors.Wrap(err, "failed to reload promo for usage count")
			}
			if err := factory.NewPromoRepository().IncrementUsage(ctx, promo.ID); err != nil {
				return errors.Wrap(err, "failed to record promo usage")
			}
		}

		if input.SaveAddress {
			if err := factory.NewUserRepository().UpdateAddress(ctx, userID, &input.ShippingAddress); err != nil {
				return errors.Wrap(err, "failed to save shipping address")
			}
		}

		return nil
	})
	if err != nil {
		// A concurrent submission of the same attempt can beat us to the
		// unique index; treat that as a replay.
		if errors.Is(err, repository.ErrDuplicateCheckoutAttempt) {
			return srv.orderRepo.FindOrderByCheckoutAttempt(ctx, userID, input.CheckoutAttemptID)
		}

		return nil, err
	}

	publishOrderEvent(ctx, srv.log(ctx), srv.publisher, constants.OrderEventCreated, order)

	srv.log(ctx).Info("Order placed",
		"orderId", order.ID,
		"userId", userID,
		"total", order.Total,
		"items", order.ItemCount())

	return order, nil
}

