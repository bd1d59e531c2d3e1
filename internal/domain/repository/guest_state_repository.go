package repository

import (
	"context"

	"kix/internal/domain/entity"
)

// GuestStateRepository defines the interface for device-scoped guest storage.
// Guest state is keyed by an opaque device ID and survives server restarts
// but makes no durability promises beyond the device's lifetime. A device
// with no stored state reads as empty.
type GuestStateRepository interface {
	// LoadGuestCart retrieves the guest cart for a device.
	LoadGuestCart(ctx context.Context, deviceID string) (*entity.Cart, error)

	// SaveGuestCart replaces the guest cart for a device.
	SaveGuestCart(ctx context.Context, deviceID string, cart *entity.Cart) error

	// LoadGuestFavorites retrieves the guest favorites for a device.
	LoadGuestFavorites(ctx context.Context, deviceID string) (*entity.Favorites, error)

	// SaveGuestFavorites replaces the guest favorites for a device.
	SaveGuestFavorites(ctx context.Context, deviceID string, favorites *entity.Favorites) error

	// ClearGuestState removes all stored state for a device. Called after a
	// successful sign-in merge so the same guest data cannot merge twice.
	ClearGuestState(ctx context.Context, deviceID string) error
}
