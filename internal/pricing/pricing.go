// Package pricing is the single source of truth for order pricing. Every
// surface that shows a shipping fee or a grand total (cart view, checkout,
// order summary) must go through Rule.Quote so the numbers can never drift.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/matthieukhl/storefront/internal/config"
)

// Rule holds the shipping pricing constants.
type Rule struct {
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold decimal.Decimal
	// ShippingFee is the flat fee charged below the threshold.
	ShippingFee decimal.Decimal
}

// DefaultRule returns the standard rule: flat 10.00 shipping, waived once the
// subtotal reaches 50.00.
func DefaultRule() Rule {
	return Rule{
		FreeShippingThreshold: decimal.RequireFromString("50.00"),
		ShippingFee:           decimal.RequireFromString("10.00"),
	}
}

// FromConfig builds a rule from the configured decimal strings
func FromConfig(cfg *config.PricingConfig) (Rule, error) {
	threshold, err := decimal.NewFromString(cfg.FreeShippingThreshold)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid free shipping threshold %q: %w", cfg.FreeShippingThreshold, err)
	}
	fee, err := decimal.NewFromString(cfg.ShippingFee)
	if err != nil {
		return Rule{}, fmt.Errorf("invalid shipping fee %q: %w", cfg.ShippingFee, err)
	}
	return Rule{FreeShippingThreshold: threshold, ShippingFee: fee}, nil
}

// Quote is a priced cart: subtotal, shipping fee and grand total.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Quote prices a subtotal under this rule. Shipping is waived when the
// subtotal meets the threshold, charged in full otherwise.
func (r Rule) Quote(subtotal decimal.Decimal) Quote {
	shipping := r.ShippingFee
	if subtotal.GreaterThanOrEqual(r.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
