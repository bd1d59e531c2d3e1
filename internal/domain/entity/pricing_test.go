package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testRules = PricingRules{
	TaxRate:               0.08,
	FlatShipping:          10,
	FreeShippingThreshold: 100,
}

func cartWithSubtotal(subtotal float64) *Cart {
	cart := NewCart()
	cart.Add(testSnapshot(subtotal), 9.5, 1, time.Now())

	return cart
}

func TestPriceCart_BelowThresholdChargesFlatShipping(t *testing.T) {
	quote := PriceCart(cartWithSubtotal(50), testRules, nil)

	assert.Equal(t, 50.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Discount)
	assert.Equal(t, 10.0, quote.Shipping)
	assert.Equal(t, 4.0, quote.Tax)
	assert.Equal(t, 64.0, quote.Total)
	assert.Nil(t, quote.Promo)
}

func TestPriceCart_AtThresholdShipsFree(t *testing.T) {
	quote := PriceCart(cartWithSubtotal(100), testRules, nil)

	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 8.0, quote.Tax)
	assert.Equal(t, 108.0, quote.Total)
}

func TestPriceCart_JustBelowThresholdStillCharges(t *testing.T) {
	quote := PriceCart(cartWithSubtotal(99.99), testRules, nil)

	assert.Equal(t, 10.0, quote.Shipping)
}

func TestPriceCart_DiscountCanReinstateShipping(t *testing.T) {
	// Subtotal 120 would ship free, but the discount drops the payable
	// amount below the threshold, so the flat fee applies again.
	promo := &AppliedPromo{Code: "SAVE50", Type: PromoFixed, Value: 50, DiscountAmount: 50}

	quote := PriceCart(cartWithSubtotal(120), testRules, promo)

	assert.Equal(t, 50.0, quote.Discount)
	assert.Equal(t, 10.0, quote.Shipping)
	// Tax applies to the discounted subtotal: (120-50) * 0.08.
	assert.InDelta(t, 5.60, quote.Tax, 0.0001)
	assert.InDelta(t, 85.60, quote.Total, 0.0001)
}

func TestPriceCart_DiscountedSubtotalAtThresholdShipsFree(t *testing.T) {
	promo := &AppliedPromo{Code: "SAVE20", Type: PromoFixed, Value: 20, DiscountAmount: 20}

	quote := PriceCart(cartWithSubtotal(120), testRules, promo)

	assert.Equal(t, 0.0, quote.Shipping)
}

func TestPriceCart_DiscountCappedAtSubtotal(t *testing.T) {
	promo := &AppliedPromo{Code: "BIG", Type: PromoFixed, Value: 500, DiscountAmount: 500}

	quote := PriceCart(cartWithSubtotal(50), testRules, promo)

	assert.Equal(t, 50.0, quote.Discount)
	assert.Equal(t, 0.0, quote.Tax)
	// Only shipping remains payable.
	assert.Equal(t, 10.0, quote.Total)
}

func TestPriceCart_EmptyCartIsAllZeros(t *testing.T) {
	quote := PriceCart(NewCart(), testRules, nil)

	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Shipping)
	assert.Equal(t, 0.0, quote.Tax)
	assert.Equal(t, 0.0, quote.Total)
}

func TestPriceCart_CarriesAppliedPromo(t *testing.T) {
	promo := &AppliedPromo{Code: "TEN", Type: PromoPercentage, Value: 10, DiscountAmount: 12}

	quote := PriceCart(cartWithSubtotal(120), testRules, promo)

	assert.Equal(t, promo, quote.Promo)
	assert.Equal(t, 12.0, quote.Discount)
}
