package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kix/internal/delivery/context"
	"kix/internal/domain/entity"
	domainerrors "kix/internal/domain/errors"
	"kix/internal/domain/repository"
	"kix/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	guestRepo   repository.GuestStateRepository
	locks       *ownerLocks
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	GuestRepo   repository.GuestStateRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		productRepo: params.ProductRepo,
		cartRepo:    params.CartRepo,
		guestRepo:   params.GuestRepo,
		locks:       newOwnerLocks(),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadCart reads the session's active cart: the durable cart for signed-in
// shoppers, the device-scoped guest cart otherwise. A missing durable cart
// reads as empty.
func (srv *cartService) loadCart(ctx context.Context, session usecase.Session) (*entity.Cart, error) {
	if session.Identity.IsAuthenticated() {
		cart, err := srv.cartRepo.FindCartByUser(ctx, session.Identity.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return entity.NewCart(), nil
			}

			return nil, errors.Wrap(err, "failed to load durable cart")
		}

		return cart, nil
	}

	cart, err := srv.guestRepo.LoadGuestCart(ctx, session.DeviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load guest cart")
	}

	return cart, nil
}

// saveCart writes the cart back to the store the session reads from.
func (srv *cartService) saveCart(ctx context.Context, session usecase.Session, cart *entity.Cart) error {
	if session.Identity.IsAuthenticated() {
		if err := srv.cartRepo.SaveCart(ctx, session.Identity.UserID, cart); err != nil {
			return errors.Wrap(err, "failed to save durable cart")
		}

		return nil
	}

	if err := srv.guestRepo.SaveGuestCart(ctx, session.DeviceID, cart); err != nil {
		return errors.Wrap(err, "failed to save guest cart")
	}

	return nil
}

// GetCart retrieves the session's active cart.
func (srv *cartService) GetCart(ctx context.Context, session usecase.Session) (*entity.Cart, error) {
	return srv.loadCart(ctx, session)
}

// AddItem validates the product and size, then adds the item to the cart.
func (srv *cartService) AddItem(ctx context.Context, session usecase.Session, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for cart add")
	}

	if !sizeAvailable(product, input.Size) {
		return nil, domainerrors.ErrSizeUnavailable
	}

	unlock := srv.locks.Lock(ownerKey(session))
	defer unlock()

	cart, err := srv.loadCart(ctx, session)
	if err != nil {
		return nil, err
	}

	cart.Add(product.Snapshot(), input.Size, input.Quantity, time.Now())

	if err := srv.saveCart(ctx, session, cart); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Cart item added",
		"productId", input.ProductID,
		"size", input.Size,
		"quantity", input.Quantity,
		"itemCount", cart.ItemCount())

	return cart, nil
}

// UpdateQuantity sets the quantity of an existing line.
func (srv *cartService) UpdateQuantity(ctx context.Context, session usecase.Session, ref usecase.CartLineRef, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	unlock := srv.locks.Lock(ownerKey(session))
	defer unlock()

	cart, err := srv.loadCart(ctx, session)
	if err != nil {
		return nil, err
	}

	key := entity.CartLineKey{ProductID: ref.ProductID, Size: ref.Size}
	if !cart.Contains(key) {
		return nil, domainerrors.ErrCartItemNotFound
	}

	cart.SetQuantity(key, quantity)

	if err := srv.saveCart(ctx, session, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem deletes a line from the cart. Removing an absent line leaves the
// cart unchanged.
func (srv *cartService) RemoveItem(ctx context.Context, session usecase.Session, ref usecase.CartLineRef) (*entity.Cart, error) {
	unlock := srv.locks.Lock(ownerKey(session))
	defer unlock()

	cart, err := srv.loadCart(ctx, session)
	if err != nil {
		return nil, err
	}

	cart.Remove(entity.CartLineKey{ProductID: ref.ProductID, Size: ref.Size})

	if err := srv.saveCart(ctx, session, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// ClearCart empties the session's cart.
func (srv *cartService) ClearCart(ctx context.Context, session usecase.Session) error {
	unlock := srv.locks.Lock(ownerKey(session))
	defer unlock()

	return srv.saveCart(ctx, session, entity.NewCart())
}

func sizeAvailable(product *entity.Product, size float64) bool {
	for _, s := range product.Sizes {
		if s == size {
			return true
		}
	}

	return false
}
