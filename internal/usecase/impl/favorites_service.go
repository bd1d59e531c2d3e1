package impl

import (
	"context"
	"log/slog"

	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoritesService implements the FavoritesUsecase interface.
type favoritesService struct {
	productRepo   repository.ProductRepository
	favoritesRepo repository.FavoritesRepository
	guestRepo     repository.GuestStateRepository
	locks         *ownerLocks
	logger        *slog.Logger
}

// FavoritesServiceParams holds dependencies for FavoritesService, injected by Fx.
type FavoritesServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	FavoritesRepo repository.FavoritesRepository
	GuestRepo     repository.GuestStateRepository
	Logger        *slog.Logger
}

// NewFavoritesService creates a new favorites service instance
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	return &favoritesService{
		productRepo:   params.ProductRepo,
		favoritesRepo: params.FavoritesRepo,
		guestRepo:     params.GuestRepo,
		locks:         newOwnerLocks(),
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoritesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *favoritesService) loadFavorites(ctx context.Context, session usecase.Session) (*entity.Favorites, error) {
	if session.Identity.IsAuthenticated() {
		favorites, err := srv.favoritesRepo.FindFavoritesByUser(ctx, session.Identity.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load durable favorites")
		}

		return favorites, nil
	}

	favorites, err := srv.guestRepo.LoadGuestFavorites(ctx, session.DeviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest favorites")
	}

	return favorites, nil
}

func (srv *favoritesService) saveFavorites(ctx context.Context, session usecase.Session, favorites *entity.Favorites) error {
	if session.Identity.IsAuthenticated() {
		if err := srv.favoritesRepo.SaveFavorites(ctx, session.Identity.UserID, favorites); err != nil {
			return errors.Wrap(err, "failed to save durable favorites")
		}

		return nil
	}

	if err := srv.guestRepo.SaveGuestFavorites(ctx, session.DeviceID, favorites); err != nil {
		return errors.Wrap(err, "failed to save guest favorites")
	}

	return nil
}

// GetFavorites retrieves the session's favorites with product details.
// Products no longer in the catalog are kept in the set but omitted from the
// resolved products.
func (srv *favoritesService) GetFavorites(ctx context.Context, session usecase.Session) (*usecase.FavoritesOutput, error) {
	favorites, err := srv.loadFavorites(ctx, session)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindProductsByIDs(ctx, favorites.ProductIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve favorited products")
	}

	// Preserve favorited order in the resolved products.
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	ordered := make([]*entity.Product, 0, len(favorites.ProductIDs))
	for _, id := range favorites.ProductIDs {
		if product, ok := byID[id]; ok {
			ordered = append(ordered, product)
		}
	}

	return &usecase.FavoritesOutput{
		ProductIDs: favorites.ProductIDs,
		Products:   ordered,
	}, nil
}

// ToggleFavorite flips a product's favorited state and reports the new state.
func (srv *favoritesService) ToggleFavorite(ctx context.Context, session usecase.Session, productID uuid.UUID) (bool, error) {
	if _, err := srv.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, domainerrors.ErrProductNotFound
		}

		return false, errors.Wrap(err, "failed to find product for favorite toggle")
	}

	unlock := srv.locks.Lock(ownerKey(session))
	defer unlock()

	favorites, err := srv.loadFavorites(ctx, session)
	if err != nil {
		return false, err
	}

	favorited := favorites.Toggle(productID)

	if err := srv.saveFavorites(ctx, session, favorites); err != nil {
		return false, err
	}

	srv.log(ctx).Debug("Favorite toggled", "productId", productID, "favorited", favorited)

	return favorited, nil
}
