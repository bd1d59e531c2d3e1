package handler

import (
	"net/http"
	"time"

	"kix/internal/delivery/http/response"
	"kix/internal/domain/entity"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PromoHandler holds dependencies for promo handlers.
type PromoHandler struct {
	uc     usecase.PromoUsecase
	cartUC usecase.CartUsecase
}

// NewPromoHandler is the constructor for PromoHandler, injected by Fx.
func NewPromoHandler(uc usecase.PromoUsecase, cartUC usecase.CartUsecase) *PromoHandler {
	return &PromoHandler{
		uc:     uc,
		cartUC: cartUC,
	}
}

type validatePromoRequest struct {
	Code string `json:"code" validate:"required"`
}

type promoRequest struct {
	Code            string     `json:"code" validate:"required"`
	Type            string     `json:"type" validate:"required,oneof=percentage fixed"`
	Value           float64    `json:"value" validate:"required,gt=0"`
	Description     string     `json:"description"`
	Active          bool       `json:"active"`
	ExpirationDate  *time.Time `json:"expirationDate,omitempty"`
	MinimumPurchase float64    `json:"minimumPurchase" validate:"gte=0"`
}

func (req *promoRequest) toInput() *usecase.PromoInput {
	return &usecase.PromoInput{
		Code:            req.Code,
		Type:            entity.PromoType(req.Type),
		Value:           req.Value,
		Description:     req.Description,
		Active:          req.Active,
		ExpirationDate:  req.ExpirationDate,
		MinimumPurchase: req.MinimumPurchase,
	}
}

// ValidatePromo checks a code against the session's cart subtotal.
func (h *PromoHandler) ValidatePromo(c echo.Context) error {
	var req validatePromoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), currentSession(c))
	if err != nil {
		return errors.WithStack(err)
	}

	applied, err := h.uc.ValidatePromo(c.Request().Context(), &usecase.ValidatePromoInput{
		Code:     req.Code,
		Subtotal: cart.Subtotal(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applied)
}

// CreatePromo adds a new promo code. Merchant only.
func (h *PromoHandler) CreatePromo(c echo.Context) error {
	var req promoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	promo, err := h.uc.CreatePromo(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, promo)
}

// ListPromos retrieves all promo codes. Merchant only.
func (h *PromoHandler) ListPromos(c echo.Context) error {
	promos, err := h.uc.ListPromos(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promos)
}

// UpdatePromo replaces a promo code's fields. Merchant only.
func (h *PromoHandler) UpdatePromo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("promoID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid promo ID")
	}

	var req promoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promo input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	promo, err := h.uc.UpdatePromo(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, promo)
}

// DeletePromo removes a promo code. Merchant only.
func (h *PromoHandler) DeletePromo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("promoID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid promo ID")
	}

	if err := h.uc.DeletePromo(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Promo deleted"})
}
