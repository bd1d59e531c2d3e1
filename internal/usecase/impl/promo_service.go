package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// promoService implements the PromoUsecase interface.
type promoService struct {
	promoRepo repository.PromoRepository
	logger    *slog.Logger
}

// PromoServiceParams holds dependencies for PromoService, injected by Fx.
type PromoServiceParams struct {
	fx.In

	PromoRepo repository.PromoRepository
	Logger    *slog.Logger
}

// NewPromoService creates a new promo service instance
func NewPromoService(params PromoServiceParams) usecase.PromoUsecase {
	return &promoService{
		promoRepo: params.PromoRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *promoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ValidatePromo checks a code against the cart subtotal. The checks run in a
// fixed order so the shopper always sees the most specific failure:
// existence, active flag, expiration, minimum purchase.
func (srv *promoService) ValidatePromo(ctx context.Context, input *usecase.ValidatePromoInput) (*entity.AppliedPromo, error) {
	code := normalizePromoCode(input.Code)
	if code == "" {
		return nil, domainerrors.ErrPromoNotFound
	}

	promo, err := srv.promoRepo.FindPromoByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrPromoNotFound) {
			return nil, domainerrors.ErrPromoNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	if !promo.Active {
		return nil, domainerrors.ErrPromoInactive
	}

	if promo.IsExpired(time.Now()) {
		return nil, domainerrors.ErrPromoExpired
	}

	if !promo.MeetsMinimum(input.Subtotal) {
		return nil, domainerrors.ErrPromoBelowMinimum.WithDetails(
			fmt.Sprintf("minimum purchase of %.2f required", promo.MinimumPurchase))
	}

	srv.log(ctx).Debug("Promo code validated", "code", code, "subtotal", input.Subtotal)

	return &entity.AppliedPromo{
		Code:           promo.Code,
		Type:           promo.Type,
		Value:          promo.Value,
		Description:    promo.Description,
		DiscountAmount: promo.DiscountFor(input.Subtotal),
	}, nil
}

// CreatePromo adds a new promo code.
func (srv *promoService) CreatePromo(ctx context.Context, input *usecase.PromoInput) (*entity.PromoCode, error) {
	now := time.Now()
	promo := &entity.PromoCode{
		ID:              uuid.New(),
		Code:            normalizePromoCode(input.Code),
		Type:            input.Type,
		Value:           input.Value,
		Description:     input.Description,
		Active:          input.Active,
		ExpirationDate:  input.ExpirationDate,
		MinimumPurchase: input.MinimumPurchase,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.promoRepo.CreatePromo(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrDuplicatePromoCode) {
			return nil, domainerrors.ErrPromoAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create promo code")
	}

	srv.log(ctx).Info("Promo code created", "code", promo.Code, "type", promo.Type)

	return promo, nil
}

// ListPromos retrieves all promo codes, newest first.
func (srv *promoService) ListPromos(ctx context.Context) ([]*entity.PromoCode, error) {
	promos, err := srv.promoRepo.ListPromos(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	return promos, nil
}

// UpdatePromo replaces a promo code's fields.
func (srv *promoService) UpdatePromo(ctx context.Context, id uuid.UUID, input *usecase.PromoInput) (*entity.PromoCode, error) {
	promo, err := srv.promoRepo.FindPromoByCode(ctx, normalizePromoCode(input.Code))
	if err != nil && !errors.Is(err, repository.ErrPromoNotFound) {
		return nil, errors.Wrap(err, "failed to check promo code uniqueness")
	}
	if promo != nil && promo.ID != id {
		return nil, domainerrors.ErrPromoAlreadyExists
	}

	updated := &entity.PromoCode{
		ID:              id,
		Code:            normalizePromoCode(input.Code),
		Type:            input.Type,
		Value:           input.Value,
		Description:     input.Description,
		Active:          input.Active,
		ExpirationDate:  input.ExpirationDate,
		MinimumPurchase: input.MinimumPurchase,
		UpdatedAt:       time.Now(),
	}

	if err := srv.promoRepo.UpdatePromo(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrPromoNotFound) {
			return nil, domainerrors.ErrPromoNotFound
		}

		return nil, errors.Wrap(err, "failed to update promo code")
	}

	return updated, nil
}

// DeletePromo removes a promo code.
func (srv *promoService) DeletePromo(ctx context.Context, id uuid.UUID) error {
	if err := srv.promoRepo.DeletePromo(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPromoNotFound) {
			return domainerrors.ErrPromoNotFound
		}

		return errors.Wrap(err, "failed to delete promo code")
	}

	return nil
}

// normalizePromoCode canonicalizes a code for storage and lookup.
func normalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
