package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/entity"
	"kix/internal/domain/repository"
	"kix/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statesyncService implements the StateSyncUsecase interface. It tracks the
// identity last seen per device so each sign-in triggers at most one merge:
// rehydrates (token refreshes, reconnects) and any sign-in after the first
// authentication event of the process session load durable state verbatim.
type statesyncService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	favRepo   repository.FavoritesRepository
	guestRepo repository.GuestStateRepository
	locks     *ownerLocks
	logger    *slog.Logger

	mu       sync.RWMutex
	observed map[string]entity.Identity // deviceID -> last observed identity
	authSeen map[string]bool            // deviceID -> authentication event handled this session
}

// StateSyncServiceParams holds dependencies for StateSyncService, injected by Fx.
type StateSyncServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	FavRepo   repository.FavoritesRepository
	GuestRepo repository.GuestStateRepository
	Logger    *slog.Logger
}

// NewStateSyncService creates a new state sync service instance
func NewStateSyncService(params StateSyncServiceParams) usecase.StateSyncUsecase {
	return &statesyncService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		favRepo:   params.FavRepo,
		guestRepo: params.GuestRepo,
		locks:     newOwnerLocks(),
		observed:  make(map[string]entity.Identity),
		authSeen:  make(map[string]bool),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *statesyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CurrentIdentity reports the identity last observed for the device.
func (srv *statesyncService) CurrentIdentity(deviceID string) entity.Identity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if identity, ok := srv.observed[deviceID]; ok {
		return identity
	}

	return entity.Anonymous()
}

func (srv *statesyncService) recordIdentity(deviceID string, identity entity.Identity) {
	srv.mu.Lock()
	srv.observed[deviceID] = identity
	srv.mu.Unlock()
}

// authObserved reports whether the device already went through a successful
// sign-in this process session. Sign-out does not reset it.
func (srv *statesyncService) authObserved(deviceID string) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.authSeen[deviceID]
}

func (srv *statesyncService) markAuthObserved(deviceID string) {
	srv.mu.Lock()
	srv.authSeen[deviceID] = true
	srv.mu.Unlock()
}

// HandleIdentityChange classifies the device's identity transition and
// applies its effect. Transitions for the same device are serialized, so
// concurrent sign-in notifications cannot run the merge twice.
func (srv *statesyncService) HandleIdentityChange(ctx context.Context, deviceID string, current entity.Identity) (*usecase.MergeResult, error) {
	unlock := srv.locks.Lock("device:" + deviceID)
	defer unlock()

	previous := srv.CurrentIdentity(deviceID)
	transition := entity.ClassifyTransition(previous, current)

	switch transition {
	case entity.TransitionSignIn:
		result, err := srv.signIn(ctx, deviceID, current)
		if err != nil {
			// Guest state stays intact and the tracker keeps the anonymous
			// identity, so a retried sign-in runs the merge again.
			return nil, err
		}
		srv.recordIdentity(deviceID, current)

		return result, nil

	case entity.TransitionRehydrate:
		srv.recordIdentity(deviceID, current)

		return srv.rehydrate(ctx, deviceID, current)

	case entity.TransitionSignOut:
		srv.recordIdentity(deviceID, current)

		return srv.reloadGuestState(ctx, deviceID, entity.TransitionSignOut)

	default:
		srv.recordIdentity(deviceID, current)

		return srv.reloadGuestState(ctx, deviceID, entity.TransitionNone)
	}
}

// signIn handles an anonymous-to-authenticated transition. The guest merge
// runs only for the device's first authentication event of the process
// session and only when there is guest state to fold in; every other
// sign-in loads durable state verbatim. Guest lines gathered after a
// sign-out never merge back.
func (srv *statesyncService) signIn(ctx context.Context, deviceID string, current entity.Identity) (*usecase.MergeResult, error) {
	if srv.authObserved(deviceID) {
		result, err := srv.rehydrate(ctx, deviceID, current)
		if err != nil {
			return nil, err
		}
		result.Transition = entity.TransitionSignIn

		return result, nil
	}

	guestCart, err := srv.guestRepo.LoadGuestCart(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest cart for merge")
	}

	guestFavorites, err := srv.guestRepo.LoadGuestFavorites(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest favorites for merge")
	}

	if guestCart.IsEmpty() && guestFavorites.Count() == 0 {
		// Nothing to fold in; skip the merge transaction entirely.
		result, err := srv.rehydrate(ctx, deviceID, current)
		if err != nil {
			return nil, err
		}
		result.Transition = entity.TransitionSignIn
		srv.markAuthObserved(deviceID)

		return result, nil
	}

	result, err := srv.mergeGuestState(ctx, deviceID, current, guestCart, guestFavorites)
	if err != nil {
		return nil, err
	}
	srv.markAuthObserved(deviceID)

	return result, nil
}

// mergeGuestState folds the device's guest cart and favorites into the
// signed-in user's durable state, then clears the guest copy so the same
// data can never merge twice. The durable writes happen in one transaction.
func (srv *statesyncService) mergeGuestState(ctx context.Context, deviceID string, current entity.Identity, guestCart *entity.Cart, guestFavorites *entity.Favorites) (*usecase.MergeResult, error) {
	userID := current.UserID

	var mergedCart *entity.Cart
	var mergedFavorites *entity.Favorites
	var linesAdded int

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		favRepo := factory.NewFavoritesRepository()

		durableCart, err := cartRepo.FindCartByUser(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(err, "failed to load durable cart for merge")
			}
			durableCart = entity.NewCart()
		}

		durableFavorites, err := favRepo.FindFavoritesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load durable favorites for merge")
		}

		mergedCart = entity.MergeCarts(durableCart, guestCart)
		mergedFavorites = entity.MergeFavorites(durableFavorites, guestFavorites)
		linesAdded = len(mergedCart.Items) - len(durableCart.Items)

		if err := cartRepo.SaveCart(ctx, userID, mergedCart); err != nil {
			return errors.Wrap(err, "failed to save merged cart")
		}

		if err := favRepo.SaveFavorites(ctx, userID, mergedFavorites); err != nil {
			return errors.Wrap(err, "failed to save merged favorites")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "guest state merge transaction failed")
	}

	// The durable state now owns the guest data. Clearing is best-effort
	// against double-merge; the tracker already prevents re-merging on
	// rehydrates and later sign-ins from this device.
	if err := srv.guestRepo.ClearGuestState(ctx, deviceID); err != nil {
		srv.log(ctx).Error("Failed to clear guest state after merge", "deviceId", deviceID, "error", err)
	}

	srv.log(ctx).Info("Guest state merged into account",
		"userId", userID,
		"cartLines", len(mergedCart.Items),
		"cartLinesAdded", linesAdded,
		"favorites", mergedFavorites.Count())

	return &usecase.MergeResult{
		Transition:     entity.TransitionSignIn,
		Merged:         true,
		Cart:           mergedCart,
		Favorites:      mergedFavorites,
		CartLinesAdded: linesAdded,
	}, nil
}

// rehydrate reloads the user's durable state verbatim.
func (srv *statesyncService) rehydrate(ctx context.Context, deviceID string, current entity.Identity) (*usecase.MergeResult, error) {
	cart, err := srv.cartRepo.FindCartByUser(ctx, current.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to rehydrate durable cart")
		}
		cart = entity.NewCart()
	}

	favorites, err := srv.favRepo.FindFavoritesByUser(ctx, current.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rehydrate durable favorites")
	}

	return &usecase.MergeResult{
		Transition: entity.TransitionRehydrate,
		Cart:       cart,
		Favorites:  favorites,
	}, nil
}

// reloadGuestState returns the device's guest view, used after sign-out and
// for anonymous no-op transitions.
func (srv *statesyncService) reloadGuestState(ctx context.Context, deviceID string, transition entity.TransitionKind) (*usecase.MergeResult, error) {
	cart, err := srv.guestRepo.LoadGuestCart(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest cart")
	}

	favorites, err := srv.guestRepo.LoadGuestFavorites(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest favorites")
	}

	return &usecase.MergeResult{
		Transition: transition,
		Cart:       cart,
		Favorites:  favorites,
	}, nil
}
