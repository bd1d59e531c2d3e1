// Package handler contains the HTTP handlers for the application.
package handler

import (
	"kix/internal/delivery/http/middleware"
	"kix/internal/domain/entity"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentDeviceID returns the device ID attached by the device middleware, or
// empty when the request did not identify a device.
func currentDeviceID(c echo.Context) string {
	deviceID, _ := c.Get(middleware.ContextKeyDeviceID).(string)

	return deviceID
}

// currentUserID returns the authenticated user's ID, if any.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

// currentSession builds the request's session from the device and auth
// middleware. Requests without a valid token act as guests.
func currentSession(c echo.Context) usecase.Session {
	session := usecase.GuestSession(currentDeviceID(c))
	if userID, ok := currentUserID(c); ok {
		session.Identity = entity.Authenticated(userID)
	}

	return session
}
