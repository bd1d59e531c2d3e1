package usecase

import (
	"context"

	"kix/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoritesOutput bundles the favorites set with the resolved products, in
// favorited order. Products removed from the catalog are omitted from
// Products but kept in ProductIDs.
type FavoritesOutput struct {
	ProductIDs []uuid.UUID
	Products   []*entity.Product
}

// FavoritesUsecase defines the interface for favorites operations. Every call
// routes to guest or durable storage based on the session's identity.
type FavoritesUsecase interface {
	// GetFavorites retrieves the session's favorites with product details.
	GetFavorites(ctx context.Context, session Session) (*FavoritesOutput, error)

	// ToggleFavorite flips a product's favorited state and reports the new
	// state.
	ToggleFavorite(ctx context.Context, session Session, productID uuid.UUID) (bool, error)
}
