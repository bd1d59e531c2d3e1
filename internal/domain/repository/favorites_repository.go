package repository

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoritesRepository defines the interface for durable (account-scoped)
// favorites storage. A user with no stored favorites reads as an empty set.
type FavoritesRepository interface {
	// FindFavoritesByUser retrieves the stored favorites for a user.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) (*entity.Favorites, error)

	// SaveFavorites replaces the user's stored favorites with the given set.
	SaveFavorites(ctx context.Context, userID uuid.UUID, favorites *entity.Favorites) error
}
