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
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	productRepo *mockRepo.MockProductRepository
	cartRepo    *mockRepo.MockCartRepository
	guestRepo   *mockRepo.MockGuestStateRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	guestRepo := mockRepo.NewMockGuestStateRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCartService(CartServiceParams{
		ProductRepo: productRepo,
		CartRepo:    cartRepo,
		GuestRepo:   guestRepo,
		Logger:      logger,
	})

	return cartServiceFixtures{
		service:     service,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		guestRepo:   guestRepo,
	}
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     "Air Zoom",
		Brand:    "Nike",
		Price:    120,
		Category: entity.CategoryMens,
		Sizes:    []float64{8, 9, 9.5, 10},
	}
}

func TestCartService_GetCart_GuestReadsDeviceStore(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")
	guestCart := &entity.Cart{Items: []entity.CartItem{{ProductID: uuid.New(), Size: 9, Quantity: 1}}}

	fx.guestRepo.EXPECT().LoadGuestCart(ctx, "device-1").Return(guestCart, nil)

	cart, err := fx.service.GetCart(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, guestCart, cart)
}

func TestCartService_GetCart_AuthenticatedReadsDurableStore(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	session := usecase.Session{DeviceID: "device-1", Identity: entity.Authenticated(userID)}
	durableCart := &entity.Cart{Items: []entity.CartItem{{ProductID: uuid.New(), Size: 9, Quantity: 2}}}

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(durableCart, nil)

	cart, err := fx.service.GetCart(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, durableCart, cart)
}

func TestCartService_GetCart_MissingDurableCartReadsEmpty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	session := usecase.Session{DeviceID: "device-1", Identity: entity.Authenticated(userID)}

	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetCart(ctx, session)

	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_AddItem_GuestWritesDeviceStore(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")
	product := testProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.guestRepo.EXPECT().LoadGuestCart(ctx, "device-1").Return(entity.NewCart(), nil)

	var saved *entity.Cart
	fx.guestRepo.EXPECT().
		SaveGuestCart(ctx, "device-1", mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, deviceID string, cart *entity.Cart) {
			saved = cart
		}).
		Return(nil)

	cart, err := fx.service.AddItem(ctx, session, &usecase.AddCartItemInput{
		ProductID: product.ID,
		Size:      9.5,
		Quantity:  2,
	})

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, product.Name, cart.Items[0].Name)
	assert.Equal(t, saved, cart)
}

func TestCartService_AddItem_AuthenticatedWritesDurableStore(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	session := usecase.Session{DeviceID: "device-1", Identity: entity.Authenticated(userID)}
	product := testProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.cartRepo.EXPECT().FindCartByUser(ctx, userID).Return(entity.NewCart(), nil)
	fx.cartRepo.EXPECT().SaveCart(ctx, userID, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := fx.service.AddItem(ctx, session, &usecase.AddCartItemInput{
		ProductID: product.ID,
		Size:      9,
		Quantity:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, usecase.GuestSession("device-1"), &usecase.AddCartItemInput{
		ProductID: productID,
		Size:      9,
		Quantity:  1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_SizeUnavailable(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := testProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddItem(ctx, usecase.GuestSession("device-1"), &usecase.AddCartItemInput{
		ProductID: product.ID,
		Size:      13,
		Quantity:  1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrSizeUnavailable)
}

func TestCartService_AddItem_QuantityBelowOne(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), usecase.GuestSession("device-1"), &usecase.AddCartItemInput{
		ProductID: uuid.New(),
		Size:      9,
		Quantity:  0,
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_UpdateQuantity_MissingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")

	fx.guestRepo.EXPECT().LoadGuestCart(ctx, "device-1").Return(entity.NewCart(), nil)

	_, err := fx.service.UpdateQuantity(ctx, session, usecase.CartLineRef{ProductID: uuid.New(), Size: 9}, 2)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")
	productID := uuid.New()
	existing := &entity.Cart{Items: []entity.CartItem{{ProductID: productID, Size: 9, Quantity: 1}}}

	fx.guestRepo.EXPECT().LoadGuestCart(ctx, "device-1").Return(existing, nil)
	fx.guestRepo.EXPECT().SaveGuestCart(ctx, "device-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := fx.service.UpdateQuantity(ctx, session, usecase.CartLineRef{ProductID: productID, Size: 9}, 5)

	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_RemoveItem_AbsentLineIsNoOp(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")
	existing := &entity.Cart{Items: []entity.CartItem{{ProductID: uuid.New(), Size: 9, Quantity: 1}}}

	fx.guestRepo.EXPECT().LoadGuestCart(ctx, "device-1").Return(existing, nil)
	fx.guestRepo.EXPECT().SaveGuestCart(ctx, "device-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := fx.service.RemoveItem(ctx, session, usecase.CartLineRef{ProductID: uuid.New(), Size: 9})

	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_ClearCart_WritesEmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")

	fx.guestRepo.EXPECT().
		SaveGuestCart(ctx, "device-1", mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, deviceID string, cart *entity.Cart) {
			assert.True(t, cart.IsEmpty())
		}).
		Return(nil)

	err := fx.service.ClearCart(ctx, session)

	assert.NoError(t, err)
}
