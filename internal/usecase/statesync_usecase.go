package usecase

import (
	"context"

	"kix/internal/domain/entity"
)

// MergeResult summarizes what a sign-in merge produced.
type MergeResult struct {
	Transition     entity.TransitionKind
	Merged         bool // True only when a sign-in merge actually ran.
	Cart           *entity.Cart
	Favorites      *entity.Favorites
	CartLinesAdded int // Guest lines that were new to the durable cart.
}

// StateSyncUsecase reconciles device-scoped guest state with account-scoped
// durable state as a session's identity changes.
type StateSyncUsecase interface {
	// HandleIdentityChange classifies the device's identity transition and
	// applies its effect. A sign-in merges guest cart and favorites into the
	// durable state exactly once and clears the guest copy; a rehydrate
	// reloads durable state untouched; a sign-out reverts the device to its
	// (now empty) guest state.
	HandleIdentityChange(ctx context.Context, deviceID string, current entity.Identity) (*MergeResult, error)

	// CurrentIdentity reports the identity last observed for the device.
	// Devices never seen before are anonymous.
	CurrentIdentity(deviceID string) entity.Identity
}
