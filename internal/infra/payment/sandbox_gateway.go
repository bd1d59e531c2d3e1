// Package payment provides card gateway implementations. The sandbox gateway
// recognizes the published test card numbers so the whole checkout flow can
// run without a processor account.
package payment

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"kix/config"
	"kix/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Published test card numbers and their outcomes.
const (
	testCardSuccess        = "4242424242424242"
	testCardDeclined       = "4000000000000002"
	testCardRequiresAction = "4000002500003155"
)

// sandboxGateway implements PaymentGateway against a fixed set of test cards.
// The requires-action card is stateful, like processor test modes: the first
// charge for an order issues the authentication challenge, the retry after
// the shopper authenticates captures.
type sandboxGateway struct {
	currency string
	logger   *slog.Logger

	mu         sync.Mutex
	challenged map[string]struct{} // order IDs with an issued challenge
}

// GatewayParams holds dependencies for PaymentGateway, injected by Fx
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPaymentGateway creates a PaymentGateway based on configuration. Only the
// sandbox provider is supported; an empty provider defaults to it.
func NewPaymentGateway(params GatewayParams) (service.PaymentGateway, error) {
	currency := "USD"
	provider := "sandbox"
	if params.Config.Payment != nil {
		if params.Config.Payment.Currency != "" {
			currency = params.Config.Payment.Currency
		}
		if params.Config.Payment.Provider != "" {
			provider = params.Config.Payment.Provider
		}
	}

	if provider != "sandbox" {
		return nil, errors.Errorf("unknown payment provider: %s", provider)
	}

	params.Logger.Info("Using sandbox payment gateway",
		slog.String("currency", currency),
	)

	return &sandboxGateway{
		currency:   currency,
		logger:     params.Logger,
		challenged: make(map[string]struct{}),
	}, nil
}

// Charge attempts to capture the payment against the test card table.
func (g *sandboxGateway) Charge(ctx context.Context, req *service.ChargeRequest) (*service.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	cardNumber := normalizeCardNumber(req.CardNumber)
	if err := validateCard(cardNumber, req.ExpMonth, req.ExpYear, req.CVC); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, errors.Wrap(service.ErrInvalidCard, "charge amount must be positive")
	}

	switch cardNumber {
	case testCardDeclined:
		g.logger.Info("[Sandbox] Charge declined",
			slog.String("order_id", req.OrderID),
		)

		return nil, service.ErrChargeDeclined

	case testCardRequiresAction:
		if !g.challengeCompleted(req.OrderID) {
			g.logger.Info("[Sandbox] Charge requires additional authentication",
				slog.String("order_id", req.OrderID),
			)

			return nil, service.ErrChargeRequiresAction
		}

		g.logger.Info("[Sandbox] Authentication challenge completed",
			slog.String("order_id", req.OrderID),
		)

	case testCardSuccess:
	default:
		// Any other well-formed card succeeds in the sandbox, matching
		// processor test-mode behavior.
	}

	reference := "ch_" + uuid.NewString()

	g.logger.Info("[Sandbox] Charge captured",
		slog.String("order_id", req.OrderID),
		slog.String("reference", reference),
		slog.Float64("amount", req.Amount),
		slog.String("currency", g.currency),
	)

	return &service.ChargeResult{
		Reference: reference,
	}, nil
}

// challengeCompleted reports whether the order already went through an
// authentication challenge. The first call for an order records the issued
// challenge and returns false; the next one consumes it so the retried
// charge captures.
func (g *sandboxGateway) challengeCompleted(orderID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.challenged[orderID]; ok {
		delete(g.challenged, orderID)

		return true
	}
	g.challenged[orderID] = struct{}{}

	return false
}

func normalizeCardNumber(number string) string {
	var normalized strings.Builder
	normalized.Grow(len(number))
	for _, r := range number {
		if r == ' ' || r == '-' {
			continue
		}
		normalized.WriteRune(r)
	}

	return normalized.String()
}

func validateCard(cardNumber string, expMonth, expYear int, cvc string) error {
	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return errors.Wrap(service.ErrInvalidCard, "card number length out of range")
	}
	for _, r := range cardNumber {
		if !unicode.IsDigit(r) {
			return errors.Wrap(service.ErrInvalidCard, "card number must be numeric")
		}
	}

	if expMonth < 1 || expMonth > 12 {
		return errors.Wrap(service.ErrInvalidCard, "expiration month out of range")
	}
	now := time.Now()
	if expYear < now.Year() || (expYear == now.Year() && expMonth < int(now.Month())) {
		return errors.Wrap(service.ErrInvalidCard, "card expired")
	}

	if len(cvc) < 3 || len(cvc) > 4 {
		return errors.Wrap(service.ErrInvalidCard, "security code length out of range")
	}
	for _, r := range cvc {
		if !unicode.IsDigit(r) {
			return errors.Wrap(service.ErrInvalidCard, "security code must be numeric")
		}
	}

	return nil
}
