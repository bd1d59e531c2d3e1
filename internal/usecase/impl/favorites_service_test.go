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

// favoritesServiceFixtures holds all test dependencies for favorites service tests.
type favoritesServiceFixtures struct {
	service       usecase.FavoritesUsecase
	productRepo   *mockRepo.MockProductRepository
	favoritesRepo *mockRepo.MockFavoritesRepository
	guestRepo     *mockRepo.MockGuestStateRepository
}

func createTestFavoritesService(t *testing.T) favoritesServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	favoritesRepo := mockRepo.NewMockFavoritesRepository(t)
	guestRepo := mockRepo.NewMockGuestStateRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFavoritesService(FavoritesServiceParams{
		ProductRepo:   productRepo,
		FavoritesRepo: favoritesRepo,
		GuestRepo:     guestRepo,
		Logger:        logger,
	})

	return favoritesServiceFixtures{
		service:       service,
		productRepo:   productRepo,
		favoritesRepo: favoritesRepo,
		guestRepo:     guestRepo,
	}
}

func TestFavoritesService_GetFavorites_ResolvesProductsInFavoritedOrder(t *testing.T) {
	fx := createTestFavoritesService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")
	first := testProduct()
	second := testProduct()
	favorites := &entity.Favorites{ProductIDs: []uuid.UUID{first.ID, second.ID}}

	fx.guestRepo.EXPECT().LoadGuestFavorites(ctx, "device-1").Return(favorites, nil)
	// The repository may return products in any order.
	fx.productRepo.EXPECT().
		FindProductsByIDs(ctx, favorites.ProductIDs).
		Return([]*entity.Product{second, first}, nil)

	output, err := fx.service.GetFavorites(ctx, session)

	require.NoError(t, err)
	require.Len(t, output.Products, 2)
	assert.Equal(t, first.ID, output.Products[0].ID)
	assert.Equal(t, second.ID, output.Products[1].ID)
}

func TestFavoritesService_GetFavorites_OmitsDelistedProducts(t *testing.T) {
	fx := createTestFavoritesService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")
	kept := testProduct()
	delisted := uuid.New()
	favorites := &entity.Favorites{ProductIDs: []uuid.UUID{delisted, kept.ID}}

	fx.guestRepo.EXPECT().LoadGuestFavorites(ctx, "device-1").Return(favorites, nil)
	fx.productRepo.EXPECT().
		FindProductsByIDs(ctx, favorites.ProductIDs).
		Return([]*entity.Product{kept}, nil)

	output, err := fx.service.GetFavorites(ctx, session)

	require.NoError(t, err)
	// The delisted ID stays in the set but resolves to no product.
	assert.Len(t, output.ProductIDs, 2)
	require.Len(t, output.Products, 1)
	assert.Equal(t, kept.ID, output.Products[0].ID)
}

func TestFavoritesService_ToggleFavorite_GuestAddsAndRemoves(t *testing.T) {
	fx := createTestFavoritesService(t)

	ctx := context.Background()
	session := usecase.GuestSession("device-1")
	product := testProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.guestRepo.EXPECT().LoadGuestFavorites(ctx, "device-1").Return(entity.NewFavorites(), nil).Once()
	fx.guestRepo.EXPECT().SaveGuestFavorites(ctx, "device-1", mock.AnythingOfType("*entity.Favorites")).Return(nil)

	favorited, err := fx.service.ToggleFavorite(ctx, session, product.ID)

	require.NoError(t, err)
	assert.True(t, favorited)

	// Toggling again removes it.
	fx.guestRepo.EXPECT().
		LoadGuestFavorites(ctx, "device-1").
		Return(&entity.Favorites{ProductIDs: []uuid.UUID{product.ID}}, nil).
		Once()

	favorited, err = fx.service.ToggleFavorite(ctx, session, product.ID)

	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoritesService_ToggleFavorite_AuthenticatedUsesDurableStore(t *testing.T) {
	fx := createTestFavoritesService(t)

	ctx := context.Background()
	userID := uuid.New()
	session := usecase.Session{DeviceID: "device-1", Identity: entity.Authenticated(userID)}
	product := testProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.favoritesRepo.EXPECT().FindFavoritesByUser(ctx, userID).Return(entity.NewFavorites(), nil)
	fx.favoritesRepo.EXPECT().SaveFavorites(ctx, userID, mock.AnythingOfType("*entity.Favorites")).Return(nil)

	favorited, err := fx.service.ToggleFavorite(ctx, session, product.ID)

	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoritesService_ToggleFavorite_UnknownProduct(t *testing.T) {
	fx := createTestFavoritesService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.ToggleFavorite(ctx, usecase.GuestSession("device-1"), productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
