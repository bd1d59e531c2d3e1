package entity

// PricingRules holds the storefront's pricing knobs. Values come from
// configuration so promotions can be tuned without a deploy.
type PricingRules struct {
	TaxRate               float64 // Applied to the discounted subtotal.
	FlatShipping          float64 // Charged below the free-shipping threshold.
	FreeShippingThreshold float64 // Discounted subtotal at or above this ships free.
}

// Quote is a fully priced view of a cart. All figures are rounded to cents.
type Quote struct {
	Subtotal float64
	Discount float64
	Shipping float64
	Tax      float64
	Total    float64
	Promo    *AppliedPromo // nil when no code is applied
}

// PriceCart prices a cart under the given rules and optional promo. The
// stages run in a fixed order: subtotal, discount, shipping, tax, total.
// Shipping and tax are both decided on the discounted subtotal; shipping is
// excluded from the tax base.
func PriceCart(cart *Cart, rules PricingRules, promo *AppliedPromo) Quote {
	subtotal := cart.Subtotal()

	var discount float64
	if promo != nil {
		discount = promo.DiscountAmount
		if discount > subtotal {
			discount = subtotal
		}
	}

	discounted := subtotal - discount

	var shipping float64
	if subtotal > 0 && discounted < rules.FreeShippingThreshold {
		shipping = rules.FlatShipping
	}

	tax := RoundCents(discounted * rules.TaxRate)
	total := RoundCents(discounted + shipping + tax)

	return Quote{
		Subtotal: subtotal,
		Discount: RoundCents(discount),
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
		Promo:    promo,
	}
}
