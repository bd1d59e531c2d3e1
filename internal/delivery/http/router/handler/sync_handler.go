package handler

import (
	"net/http"

	"kix/internal/delivery/http/response"
	"kix/internal/domain/entity"
	"kix/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SyncHandler exposes the device's identity-transition endpoint. Clients call
// it when their auth state changes out of band (app restart with a stored
// token, token expiry) so the device's guest and durable views reconcile.
type SyncHandler struct {
	uc usecase.StateSyncUsecase
}

// NewSyncHandler is the constructor for SyncHandler, injected by Fx.
func NewSyncHandler(uc usecase.StateSyncUsecase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

type syncView struct {
	Transition     entity.TransitionKind `json:"transition"`
	Merged         bool                  `json:"merged"`
	CartLinesAdded int                   `json:"cartLinesAdded"`
	Cart           *entity.Cart          `json:"cart,omitempty"`
	Favorites      *entity.Favorites     `json:"favorites,omitempty"`
}

// Sync classifies the device's identity transition and applies its effect.
// The identity is taken from the request's (optional) access token.
func (h *SyncHandler) Sync(c echo.Context) error {
	session := currentSession(c)

	result, err := h.uc.HandleIdentityChange(c.Request().Context(), session.DeviceID, session.Identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, syncView{
		Transition:     result.Transition,
		Merged:         result.Merged,
		CartLinesAdded: result.CartLinesAdded,
		Cart:           result.Cart,
		Favorites:      result.Favorites,
	})
}
