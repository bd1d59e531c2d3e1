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

// favoritesRepository implements the repository.FavoritesRepository
// interface. The set is stored as one JSON snapshot per user.
type favoritesRepository struct {
	db *gorm.DB
}

// NewFavoritesRepository is the constructor for favoritesRepository.
func NewFavoritesRepository(db *gorm.DB) repository.FavoritesRepository {
	return &favoritesRepository{
		db: db,
	}
}

// FindFavoritesByUser retrieves the stored favorites for a user. A user with
// no row reads as an empty set.
func (repo *favoritesRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) (*entity.Favorites, error) {
	var favoritesM model.FavoritesModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&favoritesM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.NewFavorites(), nil
		}

		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	return toFavoritesDomain(&favoritesM)
}

// SaveFavorites replaces the user's stored favorites with the given set.
func (repo *favoritesRepository) SaveFavorites(ctx context.Context, userID uuid.UUID, favorites *entity.Favorites) error {
	favoritesM, err := fromFavoritesDomain(userID, favorites)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"product_ids", "updated_at"}),
		}).
		Create(favoritesM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save favorites")
	}

	return nil
}

// --- Mappers ---

func fromFavoritesDomain(userID uuid.UUID, favorites *entity.Favorites) (*model.FavoritesModel, error) {
	ids := favorites.ProductIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}

	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal favorite product IDs")
	}

	return &model.FavoritesModel{
		UserID:     userID,
		ProductIDs: idsJSON,
		UpdatedAt:  time.Now(),
	}, nil
}

func toFavoritesDomain(favoritesM *model.FavoritesModel) (*entity.Favorites, error) {
	favorites := entity.NewFavorites()
	if len(favoritesM.ProductIDs) > 0 {
		if err := json.Unmarshal(favoritesM.ProductIDs, &favorites.ProductIDs); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal favorite product IDs")
		}
	}

	return favorites, nil
}
