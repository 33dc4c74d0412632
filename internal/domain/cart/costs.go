// internal/domain/cart/costs.go
package cart

import (
	"github.com/your-org/storefront-backend/internal/domain/member"
)

// Default shipping rule: orders whose discounted item total exceeds the
// exemption threshold ship for free.
const (
	DefaultShippingFee               = 3_000
	DefaultShippingFeeExemptionLimit = 100_000
)

// PricingRules carries the shipping-fee rule parameters so the calculator
// stays a pure function of its inputs.
type PricingRules struct {
	ShippingFee            int64
	ShippingFeeExemptLimit int64
}

// DefaultPricingRules returns the storefront's standard shipping rule.
func DefaultPricingRules() PricingRules {
	return PricingRules{
		ShippingFee:            DefaultShippingFee,
		ShippingFeeExemptLimit: DefaultShippingFeeExemptionLimit,
	}
}

// CheckoutCosts is the full cost breakdown for a selection of cart lines.
// All fields are non-negative whole currency units. It is recomputed on
// demand and never persisted.
type CheckoutCosts struct {
	TotalItemPrice            int64 `json:"totalItemPrice"`
	TotalItemDiscountAmount   int64 `json:"totalItemDiscountAmount"`
	TotalMemberDiscountAmount int64 `json:"totalMemberDiscountAmount"`
	DiscountedTotalItemPrice  int64 `json:"discountedTotalItemPrice"`
	ShippingFee               int64 `json:"shippingFee"`
	TotalPrice                int64 `json:"totalPrice"`
}

// CalculateCosts derives the checkout cost summary for the selected lines and
// member rank. It has no side effects and is safe to call on every read.
//
// The per-item promotional discount is rounded half-up once per line; the
// member discount applies to the item-discounted base and is rounded the same
// way. The discounted total never goes below zero.
func CalculateCosts(selected Snapshot, rank member.Rank, rules PricingRules) CheckoutCosts {
	var totalItemPrice, totalItemDiscount int64
	for _, item := range selected {
		totalItemPrice += item.Subtotal()
		totalItemDiscount += roundHalfUpPercent(item.Subtotal() * int64(item.Product.DiscountRate))
	}

	memberDiscount := roundHalfUpPercent((totalItemPrice - totalItemDiscount) * int64(rank.DiscountRate()))

	discountedTotal := totalItemPrice - totalItemDiscount - memberDiscount
	if discountedTotal < 0 {
		discountedTotal = 0
	}

	var shippingFee int64
	if len(selected) > 0 && discountedTotal <= rules.ShippingFeeExemptLimit {
		shippingFee = rules.ShippingFee
	}

	return CheckoutCosts{
		TotalItemPrice:            totalItemPrice,
		TotalItemDiscountAmount:   totalItemDiscount,
		TotalMemberDiscountAmount: memberDiscount,
		DiscountedTotalItemPrice:  discountedTotal,
		ShippingFee:               shippingFee,
		TotalPrice:                discountedTotal + shippingFee,
	}
}

// roundHalfUpPercent divides by 100 rounding half up. Inputs are percentage
// products of non-negative prices, so no negative handling is needed.
func roundHalfUpPercent(n int64) int64 {
	return (n + 50) / 100
}
