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

// CheckoutHandler holds dependencies for checkout handlers.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type quoteRequest struct {
	PromoCode string `json:"promoCode"`
}

type placeOrderRequest struct {
	CheckoutAttemptID uuid.UUID              `json:"checkoutAttemptId" validate:"required"`
	ShippingAddress   entity.ShippingAddress `json:"shippingAddress" validate:"required"`
	PromoCode         string                 `json:"promoCode"`
	PaymentMethod     string                 `json:"paymentMethod" validate:"required"`
	SaveAddress       bool                   `json:"saveAddress"`
}

// Quote prices the session's cart, applying the promo code if one is given.
func (h *CheckoutHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	quote, err := h.uc.QuoteCheckout(c.Request().Context(), currentSession(c), req.PromoCode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote)
}

// PlaceOrder freezes the cart and quote into a pending order. Retried
// submissions with the same attempt ID return the already-created order.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), currentSession(c), &usecase.PlaceOrderInput{
		CheckoutAttemptID: req.CheckoutAttemptID,
		ShippingAddress:   req.ShippingAddress,
		PromoCode:         req.PromoCode,
		PaymentMethod:     req.PaymentMethod,
		SaveAddress:       req.SaveAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}
