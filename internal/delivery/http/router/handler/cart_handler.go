package handler

import (
	"net/http"
	"strconv"

	"kix/internal/delivery/http/response"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Size      float64   `json:"size" validate:"required,gt=0"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type updateQuantityRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Size      float64   `json:"size" validate:"required,gt=0"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// GetCart retrieves the session's active cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context(), currentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a product in a chosen size to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.uc.AddItem(c.Request().Context(), currentSession(c), &usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity sets the quantity of an existing cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.uc.UpdateQuantity(c.Request().Context(), currentSession(c), usecase.CartLineRef{
		ProductID: req.ProductID,
		Size:      req.Size,
	}, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem deletes a line from the cart. The line is addressed by product
// ID in the path and size in the query, mirroring how it was added.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	size, err := strconv.ParseFloat(c.QueryParam("size"), 64)
	if err != nil || size <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid size")
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), currentSession(c), usecase.CartLineRef{
		ProductID: productID,
		Size:      size,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the session's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.uc.ClearCart(c.Request().Context(), currentSession(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"})
}
