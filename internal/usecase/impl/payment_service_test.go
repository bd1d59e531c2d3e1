package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	t         *testing.T
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
	publisher *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Publisher: publisher,
		Config:    &config.Config{},
		Logger:    logger,
	})

	return paymentServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		gateway:   gateway,
		publisher: publisher,
	}
}

func pendingOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		UserEmail:     "jamie@example.com",
		Items:         []entity.OrderItem{{ProductID: uuid.New(), Quantity: 1, Price: 50}},
		Total:         64,
		Status:        entity.OrderStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func confirmInput(orderID uuid.UUID) *usecase.ConfirmPaymentInput {
	return &usecase.ConfirmPaymentInput{
		OrderID:    orderID,
		CardNumber: "4242424242424242",
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 1,
		CVC:        "123",
		HolderName: "Jamie Doe",
	}
}

func TestPaymentService_ConfirmPayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	order := pendingOrder(userID)

	paid := *order
	paid.PaymentStatus = entity.PaymentStatusPaid
	paid.Status = entity.OrderStatusProcessing
	paid.PaymentRef = "ch_test"

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Run(func(ctx context.Context, req *service.ChargeRequest) {
			assert.Equal(t, order.ID.String(), req.OrderID)
			assert.Equal(t, order.Total, req.Amount)
			assert.Equal(t, "USD", req.Currency)
		}).
		Return(&service.ChargeResult{Reference: "ch_test"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			txOrderRepo := mockRepo.NewMockOrderRepository(fx.t)
			txCartRepo := mockRepo.NewMockCartRepository(fx.t)
			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewCartRepository().Return(txCartRepo)

			txOrderRepo.EXPECT().MarkOrderPaid(ctx, order.ID, "ch_test", mock.AnythingOfType("time.Time")).Return(nil)
			txCartRepo.EXPECT().DeleteCart(ctx, userID).Return(nil)

			_ = fn(factory)
		}).
		Return(nil)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&paid, nil).Once()

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(ctx context.Context, event *service.OrderEvent) {
			published = event
		}).
		Return(nil)

	result, err := fx.service.ConfirmPayment(ctx, session, confirmInput(order.ID))

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
	assert.Equal(t, "ch_test", result.PaymentRef)

	require.NotNil(t, published)
	assert.Equal(t, constants.OrderEventPaid, published.EventType)
}

func TestPaymentService_ConfirmPayment_ReplayedOnPaidOrderSucceeds(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	order := pendingOrder(userID)
	order.PaymentStatus = entity.PaymentStatusPaid

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	// No charge, no settle: the replay returns the paid order as-is.
	result, err := fx.service.ConfirmPayment(ctx, session, confirmInput(order.ID))

	require.NoError(t, err)
	assert.Equal(t, order, result)
}

func TestPaymentService_ConfirmPayment_LostSettleRaceStillSucceeds(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	order := pendingOrder(userID)

	paid := *order
	paid.PaymentStatus = entity.PaymentStatusPaid

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil).Once()
	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Return(&service.ChargeResult{Reference: "ch_test"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(repository.ErrOrderNotPending)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(&paid, nil).Once()

	result, err := fx.service.ConfirmPayment(ctx, session, confirmInput(order.ID))

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, result.PaymentStatus)
}

func TestPaymentService_ConfirmPayment_DeclinedStaysRetryable(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	order := pendingOrder(userID)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Return(nil, service.ErrChargeDeclined)
	fx.orderRepo.EXPECT().MarkOrderPaymentFailed(ctx, order.ID).Return(nil)

	_, err := fx.service.ConfirmPayment(ctx, session, confirmInput(order.ID))

	assert.ErrorIs(t, err, domainerrors.ErrPaymentDeclined)
}

func TestPaymentService_ConfirmPayment_RequiresActionMapsToDeclined(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	order := pendingOrder(userID)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Return(nil, service.ErrChargeRequiresAction)
	fx.orderRepo.EXPECT().MarkOrderPaymentFailed(ctx, order.ID).Return(nil)

	_, err := fx.service.ConfirmPayment(ctx, session, confirmInput(order.ID))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPaymentDeclined.ErrorCode(), appErr.ErrorCode())
}

func TestPaymentService_ConfirmPayment_InvalidCardIsValidationError(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, userID := authenticatedSession()
	order := pendingOrder(userID)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("*service.ChargeRequest")).
		Return(nil, service.ErrInvalidCard)
	fx.orderRepo.EXPECT().MarkOrderPaymentFailed(ctx, order.ID).Return(nil)

	_, err := fx.service.ConfirmPayment(ctx, session, confirmInput(order.ID))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestPaymentService_ConfirmPayment_OwnershipEnforced(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, _ := authenticatedSession()
	order := pendingOrder(uuid.New()) // Someone else's order.

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.ConfirmPayment(ctx, session, confirmInput(order.ID))

	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestPaymentService_ConfirmPayment_OrderNotFound(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	session, _ := authenticatedSession()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.ConfirmPayment(ctx, session, confirmInput(orderID))

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestPaymentService_ConfirmPayment_GuestForbidden(t *testing.T) {
	fx := createTestPaymentService(t)

	_, err := fx.service.ConfirmPayment(context.Background(), usecase.GuestSession("device-1"), confirmInput(uuid.New()))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}
