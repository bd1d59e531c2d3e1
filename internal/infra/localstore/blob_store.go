// Package localstore persists device-scoped guest state as JSON blobs. Each
// device gets its own prefix in the bucket, so clearing a device is a pair of
// deletes and never touches another device's state.
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"kix/config"
	"kix/internal/domain/entity"
	"kix/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver, used in tests
	"gocloud.dev/gcerrors"
)

const (
	cartBlobName      = "cart.json"
	favoritesBlobName = "favorites.json"
)

// blobGuestStore implements repository.GuestStateRepository on top of a
// gocloud.dev blob bucket.
type blobGuestStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// GuestStoreParams holds dependencies for the guest state store, injected by Fx
type GuestStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewGuestStateRepository opens the configured bucket and returns a guest
// state store backed by it.
func NewGuestStateRepository(params GuestStoreParams) (repository.GuestStateRepository, error) {
	if params.Config.LocalStore == nil || params.Config.LocalStore.BucketURL == "" {
		return nil, errors.New("local store bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.LocalStore.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open guest state bucket %s", params.Config.LocalStore.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing guest state bucket")

			return bucket.Close()
		},
	})

	return &blobGuestStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// NewBlobGuestStore wraps an already-open bucket. Used by tests with mem://
// buckets.
func NewBlobGuestStore(bucket *blob.Bucket, logger *slog.Logger) repository.GuestStateRepository {
	return &blobGuestStore{
		bucket: bucket,
		logger: logger,
	}
}

// LoadGuestCart retrieves the guest cart for a device. A device with no
// stored cart reads as empty.
func (s *blobGuestStore) LoadGuestCart(ctx context.Context, deviceID string) (*entity.Cart, error) {
	cart := entity.NewCart()
	if err := s.readJSON(ctx, deviceID, cartBlobName, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// SaveGuestCart replaces the guest cart for a device.
func (s *blobGuestStore) SaveGuestCart(ctx context.Context, deviceID string, cart *entity.Cart) error {
	return s.writeJSON(ctx, deviceID, cartBlobName, cart)
}

// LoadGuestFavorites retrieves the guest favorites for a device. A device with
// no stored favorites reads as empty.
func (s *blobGuestStore) LoadGuestFavorites(ctx context.Context, deviceID string) (*entity.Favorites, error) {
	favorites := entity.NewFavorites()
	if err := s.readJSON(ctx, deviceID, favoritesBlobName, favorites); err != nil {
		return nil, err
	}

	return favorites, nil
}

// SaveGuestFavorites replaces the guest favorites for a device.
func (s *blobGuestStore) SaveGuestFavorites(ctx context.Context, deviceID string, favorites *entity.Favorites) error {
	return s.writeJSON(ctx, deviceID, favoritesBlobName, favorites)
}

// ClearGuestState removes all stored state for a device. Missing blobs are
// not an error; the end state is the same.
func (s *blobGuestStore) ClearGuestState(ctx context.Context, deviceID string) error {
	for _, name := range []string{cartBlobName, favoritesBlobName} {
		if err := s.bucket.Delete(ctx, blobKey(deviceID, name)); err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				continue
			}

			return errors.Wrapf(err, "failed to delete guest %s", name)
		}
	}

	return nil
}

func (s *blobGuestStore) readJSON(ctx context.Context, deviceID, name string, out any) error {
	data, err := s.bucket.ReadAll(ctx, blobKey(deviceID, name))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to read guest %s", name)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to unmarshal guest %s", name)
	}

	return nil
}

func (s *blobGuestStore) writeJSON(ctx context.Context, deviceID, name string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal guest %s", name)
	}

	if err := s.bucket.WriteAll(ctx, blobKey(deviceID, name), data, nil); err != nil {
		return errors.Wrapf(err, "failed to write guest %s", name)
	}

	return nil
}

func blobKey(deviceID, name string) string {
	return deviceID + "/" + name
}
