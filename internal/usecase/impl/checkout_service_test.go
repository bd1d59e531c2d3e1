package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kix/config"
	"kix/internal/domain/constants"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/domain/service"
	mockRepo "kix/internal/mocks/repository"
	mockSvc "kix/internal/mocks/service"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	t         *testing.T
	service   usecase.CheckoutUsecase
	txManager *mockRepo.MockTransactionManager
	cartRepo  *mockRepo.MockCartRepository
	orderRepo *mockRepo.MockOrderRepository
	userRepo  *mockRepo.MockUserRepository
	promoRepo *mockRepo.MockPromoRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	promoRepo := mockRepo.NewMockPromoRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	promoUC := NewPromoService(PromoServiceParams{
		PromoRepo: promoRepo,
		Logger:    logger,
	})

	// Pricing falls back to the production defaults: 8% tax, 10 flat
	// shipping, free shipping from 100.
	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		PromoUC:   promoUC,
		Publisher: publisher,
		Config:    &config.Config{},
		Logger:    logger,
	})

	return checkoutServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		promoRepo: promoRepo,
		publisher: publisher,
	}
}

func (fx checkoutServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func authenticatedSession() (usecase.Session, uuid.UUID) {
	userID := uuid.New()

	return usecase.Session{DeviceID: "device-1", Identity: entity.Authenticated(userID)}, userID
}

func checkoutCart(price float64) *entity.Cart {
	return &entity.Cart{Items: []entity.CartItem{
		{ProductID: uuid.New(), Size: 9.5, Quantity: 1, Name: "Air Zoom", Brand: "Nike", Price: price},
	}}
}

func testShippingAddress() entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName: "Jamie Doe",
		Email:    "jamie@example.com",
		Phone:    "(503) 555-0100",
		Street:   "1 Main St",
		City:     "Portland",
		State:    "OR",
		ZipCode:  "97201",
		Country:  "US",
	}
}

func TestCheckoutService_QuoteCheckout_NoPromo(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(checkoutCart(50), nil)

	quote, err := fx.service.QuoteCheckout(ctx, session, "")

	require.NoError(t, err)
	assert.Equal(t, 50.0, quote.Subtotal)
	assert.Equal(t, 10.0, quote.Shipping)
	assert.Equal(t, 4.0, quote.Tax)
	assert.Equal(t, 64.0, quote.Total)
}

func TestCheckoutService_QuoteCheckout_WithPromo(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(checkoutCart(120), nil)
	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "SAVE10").Return(activePromo("SAVE10"), nil)

	quote, err := fx.service.QuoteCheckout(ctx, session, "SAVE10")

	require.NoError(t, err)
	assert.Equal(t, 120.0, quote.Subtotal)
	assert.Equal(t, 12.0, quote.Discount)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.InDelta(t, 8.64, quote.Tax, 0.0001)
	assert.InDelta(t, 116.64, quote.Total, 0.0001)
	require.NotNil(t, quote.Promo)
	assert.Equal(t, "SAVE10", quote.Promo.Code)
}

func TestCheckoutService_QuoteCheckout_GuestForbidden(t *testing.T) {
	fx := createTestCheckoutService(t)

	_, err := fx.service.QuoteCheckout(context.Background(), usecase.GuestSession("device-1"), "")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestCheckoutService_QuoteCheckout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(entity.NewCart(), nil)

	_, err := fx.service.QuoteCheckout(ctx, session, "")

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_PlaceOrder_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	attemptID := uuid.New()
	address := testShippingAddress()

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(checkoutCart(50), nil)
	fx.orderRepo.EXPECT().FindOrderByCheckoutAttempt(ctx, userID, attemptID).Return(nil, repository.ErrOrderNotFound)

	var created *entity.Order
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(fx.t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		txOrderRepo.EXPECT().
			CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
			Run(func(ctx context.Context, order *entity.Order) {
				created = order
			}).
			Return(nil)
	})

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			published = event
		}).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, session, &usecase.PlaceOrderInput{
		CheckoutAttemptID: attemptID,
		ShippingAddress:   address,
		PaymentMethod:     "card",
	})

	require.NoError(t, err)
	assert.Equal(t, created, order)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, attemptID, order.CheckoutAttemptID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, address.Email, order.UserEmail)
	assert.Equal(t, 64.0, order.Total)
	require.Len(t, order.Items, 1)

	require.NotNil(t, published)
	assert.Equal(t, constants.OrderEventCreated, published.EventType)
	assert.Equal(t, order.ID.String(), published.OrderID)
}

func TestCheckoutService_PlaceOrder_ReplayedAttemptReturnsExistingOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	attemptID := uuid.New()
	existing := &entity.Order{ID: uuid.New(), UserID: userID, CheckoutAttemptID: attemptID}

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(checkoutCart(50), nil)
	fx.orderRepo.EXPECT().FindOrderByCheckoutAttempt(ctx, userID, attemptID).Return(existing, nil)

	order, err := fx.service.PlaceOrder(ctx, session, &usecase.PlaceOrderInput{
		CheckoutAttemptID: attemptID,
		ShippingAddress:   testShippingAddress(),
		PaymentMethod:     "card",
	})

	require.NoError(t, err)
	assert.Equal(t, existing, order)
}

func TestCheckoutService_PlaceOrder_ConcurrentDuplicateTreatedAsReplay(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	attemptID := uuid.New()
	winner := &entity.Order{ID: uuid.New(), UserID: userID, CheckoutAttemptID: attemptID}

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(checkoutCart(50), nil)
	fx.orderRepo.EXPECT().FindOrderByCheckoutAttempt(ctx, userID, attemptID).Return(nil, repository.ErrOrderNotFound).Once()
	fx.onExecute(ctx, repository.ErrDuplicateCheckoutAttempt, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(fx.t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(repository.ErrDuplicateCheckoutAttempt)
	})
	fx.orderRepo.EXPECT().FindOrderByCheckoutAttempt(ctx, userID, attemptID).Return(winner, nil).Once()

	order, err := fx.service.PlaceOrder(ctx, session, &usecase.PlaceOrderInput{
		CheckoutAttemptID: attemptID,
		ShippingAddress:   testShippingAddress(),
		PaymentMethod:     "card",
	})

	require.NoError(t, err)
	assert.Equal(t, winner, order)
}

func TestCheckoutService_PlaceOrder_RecordsPromoUsageAndAddress(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	attemptID := uuid.New()
	address := testShippingAddress()
	promo := activePromo("SAVE10")

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(checkoutCart(120), nil)
	fx.orderRepo.EXPECT().FindOrderByCheckoutAttempt(ctx, userID, attemptID).Return(nil, repository.ErrOrderNotFound)
	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "SAVE10").Return(promo, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(fx.t)
		txPromoRepo := mockRepo.NewMockPromoRepository(fx.t)
		txUserRepo := mockRepo.NewMockUserRepository(fx.t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		factory.EXPECT().NewPromoRepository().Return(txPromoRepo)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)

		txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
		txPromoRepo.EXPECT().FindPromoByCode(ctx, "SAVE10").Return(promo, nil)
		txPromoRepo.EXPECT().IncrementUsage(ctx, promo.ID).Return(nil)
		txUserRepo.EXPECT().UpdateAddress(ctx, userID, &address).Return(nil)
	})

	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.PlaceOrder(ctx, session, &usecase.PlaceOrderInput{
		CheckoutAttemptID: attemptID,
		ShippingAddress:   address,
		PromoCode:         "SAVE10",
		PaymentMethod:     "card",
		SaveAddress:       true,
	})

	require.NoError(t, err)
	require.NotNil(t, order.Promo)
	assert.Equal(t, "SAVE10", order.Promo.Code)
	assert.Equal(t, 12.0, order.Discount)
}

func TestCheckoutService_PlaceOrder_BadAddressReportsEveryField(t *testing.T) {
	fx := createTestCheckoutService(t)

	session, _ := authenticatedSession()
	address := testShippingAddress()
	address.Email = "not-an-email"
	address.ZipCode = "972"

	_, err := fx.service.PlaceOrder(context.Background(), session, &usecase.PlaceOrderInput{
		CheckoutAttemptID: uuid.New(),
		ShippingAddress:   address,
		PaymentMethod:     "card",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "email")
	assert.Contains(t, appErr.Details(), "zipCode")
}

func TestCheckoutService_PlaceOrder_MissingAttemptID(t *testing.T) {
	fx := createTestCheckoutService(t)

	session, _ := authenticatedSession()

	_, err := fx.service.PlaceOrder(context.Background(), session, &usecase.PlaceOrderInput{
		ShippingAddress: testShippingAddress(),
		PaymentMethod:   "card",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}
