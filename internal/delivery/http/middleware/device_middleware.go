package middleware

import (
	"kix/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderXDeviceID carries the client's opaque device-scoped ID. Guests
	// are keyed by it; signed-in sessions use it to detect identity
	// transitions.
	HeaderXDeviceID = "X-Device-Id"

	// ContextKeyDeviceID is the echo.Context key holding the device ID.
	ContextKeyDeviceID = "deviceID"
)

// DeviceMiddleware extracts the device ID header for session-scoped routes.
type DeviceMiddleware struct{}

// NewDeviceMiddleware is the constructor for DeviceMiddleware.
func NewDeviceMiddleware() *DeviceMiddleware {
	return &DeviceMiddleware{}
}

// RequireDevice rejects requests that do not identify their device. Cart,
// favorites and session-sync routes need the device ID to route guest state.
func (m *DeviceMiddleware) RequireDevice(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deviceID := c.Request().Header.Get(HeaderXDeviceID)
		if deviceID == "" {
			return response.BadRequest(c, "DEVICE_ID_MISSING", "X-Device-Id header is required")
		}

		c.Set(ContextKeyDeviceID, deviceID)

		return next(c)
	}
}

// AttachDevice records the device ID when present but does not require it.
// Auth routes use it so a sign-in can trigger the device's state merge.
func (m *DeviceMiddleware) AttachDevice(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deviceID := c.Request().Header.Get(HeaderXDeviceID); deviceID != "" {
			c.Set(ContextKeyDeviceID, deviceID)
		}

		return next(c)
	}
}
