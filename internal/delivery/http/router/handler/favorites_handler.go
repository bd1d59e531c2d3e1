package handler

import (
	"net/http"

	"kix/internal/delivery/http/response"
	"kix/internal/domain/entity"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoritesHandler holds dependencies for favorites handlers.
type FavoritesHandler struct {
	uc usecase.FavoritesUsecase
}

// NewFavoritesHandler is the constructor for FavoritesHandler, injected by Fx.
func NewFavoritesHandler(uc usecase.FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

type favoritesView struct {
	ProductIDs []uuid.UUID       `json:"productIds"`
	Products   []*entity.Product `json:"products"`
}

type toggleFavoriteView struct {
	ProductID uuid.UUID `json:"productId"`
	Favorited bool      `json:"favorited"`
}

// GetFavorites retrieves the session's favorites with product details.
func (h *FavoritesHandler) GetFavorites(c echo.Context) error {
	output, err := h.uc.GetFavorites(c.Request().Context(), currentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favoritesView{
		ProductIDs: output.ProductIDs,
		Products:   output.Products,
	})
}

// ToggleFavorite flips a product's favorited state.
func (h *FavoritesHandler) ToggleFavorite(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	favorited, err := h.uc.ToggleFavorite(c.Request().Context(), currentSession(c), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toggleFavoriteView{
		ProductID: productID,
		Favorited: favorited,
	})
}
