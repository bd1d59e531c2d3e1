package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	mockRepo "kix/internal/mocks/repository"
	mockSvc "kix/internal/mocks/service"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	qrcode    *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOrderService(OrderServiceParams{
		OrderRepo: orderRepo,
		QRCode:    qrcode,
		Logger:    logger,
	})

	return orderServiceFixtures{
		service:   service,
		orderRepo: orderRepo,
		qrcode:    qrcode,
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{pendingOrder(userID), pendingOrder(userID)}

	fx.orderRepo.EXPECT().FindOrdersByUser(ctx, userID).Return(orders, nil)

	result, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, result)
}

func TestOrderService_GetOrder_EnforcesOwnership(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, uuid.New(), order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, uuid.New(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetReceiptQR_PaidOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(userID)
	order.PaymentStatus = entity.PaymentStatusPaid

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.qrcode.EXPECT().GenerateReceiptQR(order.ID).Return([]byte("png-bytes"), nil)

	png, err := fx.service.GetReceiptQR(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestOrderService_GetReceiptQR_UnpaidOrderRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(userID)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.GetReceiptQR(ctx, userID, order.ID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrConflict.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "after payment")
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())
	order.Status = entity.OrderStatusProcessing

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped).Return(nil)

	updated, err := fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
}

func TestOrderService_UpdateOrderStatus_IllegalTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())
	order.Status = entity.OrderStatusDelivered

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	_, err := fx.service.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusShipped)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrOrderStatusTransition.ErrorCode(), appErr.ErrorCode())
}
