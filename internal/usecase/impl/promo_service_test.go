package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// promoServiceFixtures holds all test dependencies for promo service tests.
type promoServiceFixtures struct {
	service   usecase.PromoUsecase
	promoRepo *mockRepo.MockPromoRepository
}

func createTestPromoService(t *testing.T) promoServiceFixtures {
	promoRepo := mockRepo.NewMockPromoRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPromoService(PromoServiceParams{
		PromoRepo: promoRepo,
		Logger:    logger,
	})

	return promoServiceFixtures{
		service:   service,
		promoRepo: promoRepo,
	}
}

func activePromo(code string) *entity.PromoCode {
	return &entity.PromoCode{
		ID:     uuid.New(),
		Code:   code,
		Type:   entity.PromoPercentage,
		Value:  10,
		Active: true,
	}
}

func TestPromoService_ValidatePromo_Success(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	promo := activePromo("SAVE10")

	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "SAVE10").Return(promo, nil)

	applied, err := fx.service.ValidatePromo(ctx, &usecase.ValidatePromoInput{Code: "save10", Subtotal: 120})

	require.NoError(t, err)
	assert.Equal(t, "SAVE10", applied.Code)
	assert.Equal(t, entity.PromoPercentage, applied.Type)
	assert.InDelta(t, 12.0, applied.DiscountAmount, 0.0001)
}

func TestPromoService_ValidatePromo_NotFound(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()

	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "NOPE").Return(nil, repository.ErrPromoNotFound)

	_, err := fx.service.ValidatePromo(ctx, &usecase.ValidatePromoInput{Code: " nope ", Subtotal: 50})

	assert.ErrorIs(t, err, domainerrors.ErrPromoNotFound)
}

func TestPromoService_ValidatePromo_EmptyCode(t *testing.T) {
	fx := createTestPromoService(t)

	_, err := fx.service.ValidatePromo(context.Background(), &usecase.ValidatePromoInput{Code: "   ", Subtotal: 50})

	assert.ErrorIs(t, err, domainerrors.ErrPromoNotFound)
}

func TestPromoService_ValidatePromo_Inactive(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	promo := activePromo("OLD")
	promo.Active = false

	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "OLD").Return(promo, nil)

	_, err := fx.service.ValidatePromo(ctx, &usecase.ValidatePromoInput{Code: "OLD", Subtotal: 50})

	assert.ErrorIs(t, err, domainerrors.ErrPromoInactive)
}

func TestPromoService_ValidatePromo_Expired(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	promo := activePromo("EXPIRED")
	past := time.Now().Add(-time.Hour)
	promo.ExpirationDate = &past

	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "EXPIRED").Return(promo, nil)

	_, err := fx.service.ValidatePromo(ctx, &usecase.ValidatePromoInput{Code: "EXPIRED", Subtotal: 50})

	assert.ErrorIs(t, err, domainerrors.ErrPromoExpired)
}

func TestPromoService_ValidatePromo_BelowMinimum(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	promo := activePromo("BULK")
	promo.MinimumPurchase = 100

	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "BULK").Return(promo, nil)

	_, err := fx.service.ValidatePromo(ctx, &usecase.ValidatePromoInput{Code: "BULK", Subtotal: 99.99})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPromoBelowMinimum.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "100.00")
}

func TestPromoService_CreatePromo_NormalizesCode(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()

	fx.promoRepo.EXPECT().CreatePromo(ctx, mock.AnythingOfType("*entity.PromoCode")).Return(nil)

	promo, err := fx.service.CreatePromo(ctx, &usecase.PromoInput{
		Code:   " summer ",
		Type:   entity.PromoFixed,
		Value:  15,
		Active: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "SUMMER", promo.Code)
	assert.NotEqual(t, uuid.Nil, promo.ID)
}

func TestPromoService_CreatePromo_DuplicateCode(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()

	fx.promoRepo.EXPECT().CreatePromo(ctx, mock.AnythingOfType("*entity.PromoCode")).Return(repository.ErrDuplicatePromoCode)

	_, err := fx.service.CreatePromo(ctx, &usecase.PromoInput{Code: "SUMMER", Type: entity.PromoFixed, Value: 15})

	assert.ErrorIs(t, err, domainerrors.ErrPromoAlreadyExists)
}

func TestPromoService_UpdatePromo_CodeTakenByAnother(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	existing := activePromo("SAVE10")

	fx.promoRepo.EXPECT().FindPromoByCode(ctx, "SAVE10").Return(existing, nil)

	_, err := fx.service.UpdatePromo(ctx, uuid.New(), &usecase.PromoInput{Code: "SAVE10", Type: entity.PromoPercentage, Value: 10})

	assert.ErrorIs(t, err, domainerrors.ErrPromoAlreadyExists)
}

func TestPromoService_DeletePromo_NotFound(t *testing.T) {
	fx := createTestPromoService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.promoRepo.EXPECT().DeletePromo(ctx, id).Return(repository.ErrPromoNotFound)

	err := fx.service.DeletePromo(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrPromoNotFound)
}
