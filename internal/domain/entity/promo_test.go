package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromoCode_IsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&PromoCode{ExpirationDate: nil}).IsExpired(now))
	assert.False(t, (&PromoCode{ExpirationDate: &future}).IsExpired(now))
	assert.True(t, (&PromoCode{ExpirationDate: &past}).IsExpired(now))
}

func TestPromoCode_MeetsMinimum(t *testing.T) {
	promo := &PromoCode{MinimumPurchase: 50}

	assert.False(t, promo.MeetsMinimum(49.99))
	assert.True(t, promo.MeetsMinimum(50))
	assert.True(t, promo.MeetsMinimum(120))

	noMinimum := &PromoCode{}
	assert.True(t, noMinimum.MeetsMinimum(0))
}

func TestPromoCode_DiscountFor_Percentage(t *testing.T) {
	promo := &PromoCode{Type: PromoPercentage, Value: 10}

	assert.InDelta(t, 12.0, promo.DiscountFor(120), 0.0001)
	assert.InDelta(t, 2.0, promo.DiscountFor(19.99), 0.0001)
}

func TestPromoCode_DiscountFor_Fixed(t *testing.T) {
	promo := &PromoCode{Type: PromoFixed, Value: 15}

	assert.Equal(t, 15.0, promo.DiscountFor(120))
}

func TestPromoCode_DiscountFor_CappedAtSubtotal(t *testing.T) {
	promo := &PromoCode{Type: PromoFixed, Value: 50}

	assert.Equal(t, 30.0, promo.DiscountFor(30))
}
