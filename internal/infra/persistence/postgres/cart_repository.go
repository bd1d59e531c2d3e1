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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface. The cart
// is stored as one JSON snapshot per user; SaveCart is an upsert replacing
// the snapshot.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindCartByUser retrieves the stored cart for a user.
func (repo *cartRepository) FindCartByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM)
}

// SaveCart replaces the user's stored cart with the given snapshot.
func (repo *cartRepository) SaveCart(ctx context.Context, userID uuid.UUID, cart *entity.Cart) error {
	cartM, err := fromCartDomain(userID, cart)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// DeleteCart removes the user's stored cart. Deleting an absent cart is not
// an error; the end state is the same.
func (repo *cartRepository) DeleteCart(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

// --- Mappers ---

func fromCartDomain(userID uuid.UUID, cart *entity.Cart) (*model.CartModel, error) {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cart items")
	}

	return &model.CartModel{
		UserID:    userID,
		Items:     itemsJSON,
		UpdatedAt: time.Now(),
	}, nil
}

func toCartDomain(cartM *model.CartModel) (*entity.Cart, error) {
	cart := entity.NewCart()
	if len(cartM.Items) > 0 {
		if err := json.Unmarshal(cartM.Items, &cart.Items); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal cart items")
		}
	}

	return cart, nil
}
