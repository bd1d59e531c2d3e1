package payment

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"kix/config"
	"kix/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGateway(t *testing.T) service.PaymentGateway {
	gateway, err := NewPaymentGateway(GatewayParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return gateway
}

func validChargeRequest(cardNumber string) *service.ChargeRequest {
	return &service.ChargeRequest{
		OrderID:    "order-1",
		Amount:     64,
		CardNumber: cardNumber,
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 1,
		CVC:        "123",
		HolderName: "Jamie Doe",
	}
}

func TestNewPaymentGateway_UnknownProvider(t *testing.T) {
	_, err := NewPaymentGateway(GatewayParams{
		Config: &config.Config{Payment: &config.PaymentConfig{Provider: "stripe"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown payment provider")
}

func TestSandboxGateway_Charge_Success(t *testing.T) {
	gateway := createTestGateway(t)

	result, err := gateway.Charge(context.Background(), validChargeRequest("4242424242424242"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Reference, "ch_"))
}

func TestSandboxGateway_Charge_NormalizesSpacesAndDashes(t *testing.T) {
	gateway := createTestGateway(t)

	result, err := gateway.Charge(context.Background(), validChargeRequest("4242 4242-4242 4242"))

	require.NoError(t, err)
	assert.NotEmpty(t, result.Reference)
}

func TestSandboxGateway_Charge_ArbitraryWellFormedCardSucceeds(t *testing.T) {
	gateway := createTestGateway(t)

	result, err := gateway.Charge(context.Background(), validChargeRequest("5555555555554444"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Reference, "ch_"))
}

func TestSandboxGateway_Charge_Declined(t *testing.T) {
	gateway := createTestGateway(t)

	_, err := gateway.Charge(context.Background(), validChargeRequest("4000000000000002"))

	assert.ErrorIs(t, err, service.ErrChargeDeclined)
}

func TestSandboxGateway_Charge_RequiresActionThenCaptures(t *testing.T) {
	gateway := createTestGateway(t)
	ctx := context.Background()

	_, err := gateway.Charge(ctx, validChargeRequest("4000002500003155"))
	assert.ErrorIs(t, err, service.ErrChargeRequiresAction)

	// The retry after the shopper completes the challenge captures.
	result, err := gateway.Charge(ctx, validChargeRequest("4000002500003155"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Reference, "ch_"))
}

func TestSandboxGateway_Charge_ChallengeIsPerOrder(t *testing.T) {
	gateway := createTestGateway(t)
	ctx := context.Background()

	_, err := gateway.Charge(ctx, validChargeRequest("4000002500003155"))
	assert.ErrorIs(t, err, service.ErrChargeRequiresAction)

	// A different order gets its own challenge.
	other := validChargeRequest("4000002500003155")
	other.OrderID = "order-2"

	_, err = gateway.Charge(ctx, other)

	assert.ErrorIs(t, err, service.ErrChargeRequiresAction)
}

func TestSandboxGateway_Charge_InvalidCards(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *service.ChargeRequest)
	}{
		{"number too short", func(req *service.ChargeRequest) { req.CardNumber = "4242" }},
		{"number too long", func(req *service.ChargeRequest) { req.CardNumber = strings.Repeat("4", 20) }},
		{"non-numeric number", func(req *service.ChargeRequest) { req.CardNumber = "4242abcd42424242" }},
		{"month out of range", func(req *service.ChargeRequest) { req.ExpMonth = 13 }},
		{"expired year", func(req *service.ChargeRequest) { req.ExpYear = time.Now().Year() - 1 }},
		{"security code too short", func(req *service.ChargeRequest) { req.CVC = "12" }},
		{"non-numeric security code", func(req *service.ChargeRequest) { req.CVC = "12a" }},
		{"non-positive amount", func(req *service.ChargeRequest) { req.Amount = 0 }},
	}

	gateway := createTestGateway(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validChargeRequest("4242424242424242")
			tt.mutate(req)

			_, err := gateway.Charge(context.Background(), req)

			assert.ErrorIs(t, err, service.ErrInvalidCard)
		})
	}
}

func TestSandboxGateway_Charge_CancelledContext(t *testing.T) {
	gateway := createTestGateway(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Charge(ctx, validChargeRequest("4242424242424242"))

	assert.ErrorIs(t, err, context.Canceled)
}
