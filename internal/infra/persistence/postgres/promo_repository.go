package postgres

import (
	"context"
	"time"

	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// promoRepository implements the repository.PromoRepository interface.
type promoRepository struct {
	db *gorm.DB
}

// NewPromoRepository is the constructor for promoRepository.
func NewPromoRepository(db *gorm.DB) repository.PromoRepository {
	return &promoRepository{
		db: db,
	}
}

// CreatePromo persists a new promo code.
func (repo *promoRepository) CreatePromo(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoDomain(promo)

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePromoCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required promo information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promo code")
	}

	promo.ID = promoM.ID
	promo.CreatedAt = promoM.CreatedAt
	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

// FindPromoByCode retrieves a promo by its code string. Codes are stored
// uppercase, so the lookup is effectively case-insensitive for callers that
// normalize input.
func (repo *promoRepository) FindPromoByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo by code")
	}

	return toPromoDomain(&promoM), nil
}

// ListPromos retrieves all promo codes, newest first.
func (repo *promoRepository) ListPromos(ctx context.Context) ([]*entity.PromoCode, error) {
	var promoModels []*model.PromoCodeModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&promoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	promos := make([]*entity.PromoCode, 0, len(promoModels))
	for _, promoM := range promoModels {
		promos = append(promos, toPromoDomain(promoM))
	}

	return promos, nil
}

// UpdatePromo persists changes to an existing promo code.
func (repo *promoRepository) UpdatePromo(ctx context.Context, promo *entity.PromoCode) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ?", promo.ID).
		Updates(map[string]any{
			"code":             promo.Code,
			"type":             string(promo.Type),
			"value":            promo.Value,
			"description":      promo.Description,
			"active":           promo.Active,
			"expiration_date":  promo.ExpirationDate,
			"minimum_purchase": promo.MinimumPurchase,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePromoCode
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promo code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoNotFound
	}

	return nil
}

// IncrementUsage bumps the usage counter after a successful checkout.
func (repo *promoRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment promo usage")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoNotFound
	}

	return nil
}

// DeletePromo removes a promo code.
func (repo *promoRepository) DeletePromo(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromoCodeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promo code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoNotFound
	}

	return nil
}

// --- Mappers ---

func fromPromoDomain(promo *entity.PromoCode) *model.PromoCodeModel {
	return &model.PromoCodeModel{
		ID:              promo.ID,
		Code:            promo.Code,
		Type:            string(promo.Type),
		Value:           promo.Value,
		Description:     promo.Description,
		Active:          promo.Active,
		ExpirationDate:  promo.ExpirationDate,
		MinimumPurchase: promo.MinimumPurchase,
		UsageCount:      promo.UsageCount,
		CreatedAt:       promo.CreatedAt,
		UpdatedAt:       promo.UpdatedAt,
	}
}

func toPromoDomain(promoM *model.PromoCodeModel) *entity.PromoCode {
	return &entity.PromoCode{
		ID:              promoM.ID,
		Code:            promoM.Code,
		Type:            entity.PromoType(promoM.Type),
		Value:           promoM.Value,
		Description:     promoM.Description,
		Active:          promoM.Active,
		ExpirationDate:  promoM.ExpirationDate,
		MinimumPurchase: promoM.MinimumPurchase,
		UsageCount:      promoM.UsageCount,
		CreatedAt:       promoM.CreatedAt,
		UpdatedAt:       promoM.UpdatedAt,
	}
}
