package handler

import (
	"net/http"

	"kix/internal/delivery/http/response"
	"kix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type confirmPaymentRequest struct {
	OrderID    uuid.UUID `json:"orderId" validate:"required"`
	CardNumber string    `json:"cardNumber" validate:"required"`
	ExpMonth   int       `json:"expMonth" validate:"required,min=1,max=12"`
	ExpYear    int       `json:"expYear" validate:"required"`
	CVC        string    `json:"cvc" validate:"required"`
	HolderName string    `json:"holderName" validate:"required"`
}

// ConfirmPayment charges the card for a pending order and marks it paid.
// Replayed confirmations of a settled order return the paid order.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.ConfirmPayment(c.Request().Context(), currentSession(c), &usecase.ConfirmPaymentInput{
		OrderID:    req.OrderID,
		CardNumber: req.CardNumber,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
		CVC:        req.CVC,
		HolderName: req.HolderName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}
