package valueobject

import "github.com/shopspring/decimal"

// PremiumBreakdown is the itemised result of premium calculation.
//
// Invariants:
//   - TotalAdjustments equals the sum of Adjustments amounts.
//   - Subtotal = max(0, BasePremium + TotalAdjustments).
//   - AnnualPremium = max(MinimumPremium, Subtotal + StateTax + PolicyFee).
//   - MonthlyPremium = round(AnnualPremium / 12, 2).
//
// All figures are rounded half-up to 2 decimal places in the order the
// calculator documents.
type PremiumBreakdown struct {
	BasePremium      decimal.Decimal     `json:"base_premium"`
	Adjustments      []PremiumAdjustment `json:"adjustments,omitempty"`
	TotalAdjustments decimal.Decimal     `json:"total_adjustments"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	StateTax         decimal.Decimal     `json:"state_tax"`
	PolicyFee        decimal.Decimal     `json:"policy_fee"`
	AnnualPremium    decimal.Decimal     `json:"annual_premium"`
	MonthlyPremium   decimal.Decimal     `json:"monthly_premium"`
	MinimumPremium   decimal.Decimal     `json:"minimum_premium"`
}

// ZeroPremiumBreakdown is the short-circuit result used when no rate is on
// file: every figure is zero and no fee is charged.
func ZeroPremiumBreakdown() PremiumBreakdown {
	return PremiumBreakdown{
		BasePremium:      decimal.Zero,
		TotalAdjustments: decimal.Zero,
		Subtotal:         decimal.Zero,
		StateTax:         decimal.Zero,
		PolicyFee:        decimal.Zero,
		AnnualPremium:    decimal.Zero,
		MonthlyPremium:   decimal.Zero,
		MinimumPremium:   decimal.Zero,
	}
}
