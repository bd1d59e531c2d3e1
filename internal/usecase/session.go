// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"kix/internal/domain/entity"
)

// Session identifies who a request acts for. DeviceID is the opaque
// device-scoped ID every client sends; Identity is anonymous until the
// request carries a valid access token.
type Session struct {
	DeviceID string
	Identity entity.Identity
}

// GuestSession returns an anonymous session for the given device.
func GuestSession(deviceID string) Session {
	return Session{DeviceID: deviceID, Identity: entity.Anonymous()}
}
