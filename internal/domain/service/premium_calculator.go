package service

import (
	"github.com/shopspring/decimal"

	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// PremiumCalculator turns a resolved rate entry and a risk assessment into
// an itemised premium breakdown. Calculate is a pure function: identical
// inputs always produce an identical breakdown.
//
// All rounding is half-up (decimal.Round, half away from zero) to 2 decimal
// places, applied in the documented step order:
//
//  1. base = baseRate x exposure units
//  2. adjustments (tier, tenure, coverage limit)
//  3. subtotal = max(0, base + total adjustments)
//  4. state tax = subtotal x stateTaxRate
//  5. flat policy fee
//  6. annual = max(minimum premium, subtotal + tax + fee)
//  7. monthly = annual / 12
type PremiumCalculator struct {
	// PolicyFee is the flat administrative charge added after tax.
	PolicyFee decimal.Decimal
	// PreferredDiscount and NonStandardSurcharge are the tier factors.
	PreferredDiscount    decimal.Decimal
	NonStandardSurcharge decimal.Decimal
	// TenureDiscountYears is the years-in-business threshold for the
	// tenure discount.
	TenureDiscountYears int
	TenureDiscount      decimal.Decimal
	// LimitBaseline is the coverage limit above which the limit surcharge
	// applies, in steps of LimitStep, capped at LimitSurchargeCap.
	LimitBaseline     decimal.Decimal
	LimitStep         decimal.Decimal
	LimitStepFactor   decimal.Decimal
	LimitSurchargeCap decimal.Decimal
}

// NewPremiumCalculator returns a calculator with the standard rating
// constants.
func NewPremiumCalculator() *PremiumCalculator {
	return &PremiumCalculator{
		PolicyFee:            decimal.NewFromInt(250),
		PreferredDiscount:    decimal.NewFromFloat(0.10),
		NonStandardSurcharge: decimal.NewFromFloat(0.25),
		TenureDiscountYears:  5,
		TenureDiscount:       decimal.NewFromFloat(0.05),
		LimitBaseline:        decimal.NewFromInt(1_000_000),
		LimitStep:            decimal.NewFromInt(1_000_000),
		LimitStepFactor:      decimal.NewFromFloat(0.05),
		LimitSurchargeCap:    decimal.NewFromFloat(0.25),
	}
}

// Calculate produces the premium breakdown for a request. A synthetic
// (no-rate) entry short-circuits to an all-zero breakdown; the caller
// surfaces the condition as a note or an ineligible quote, never an error.
func (c *PremiumCalculator) Calculate(
	request valueobject.QuoteRequest,
	assessment valueobject.RiskAssessment,
	rate valueobject.RateTableEntry,
) valueobject.PremiumBreakdown {
	if rate.Synthetic {
		return valueobject.ZeroPremiumBreakdown()
	}

	base := rate.BaseRate.Mul(request.ExposureUnits()).Round(2)

	adjustments := c.adjustments(request, assessment, base)
	totalAdjustments := decimal.Zero
	for _, adj := range adjustments {
		totalAdjustments = totalAdjustments.Add(adj.Amount)
	}

	subtotal := base.Add(totalAdjustments)
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	stateTax := subtotal.Mul(rate.StateTaxRate).Round(2)

	annual := subtotal.Add(stateTax).Add(c.PolicyFee).Round(2)
	if annual.LessThan(rate.MinimumPremium) {
		annual = rate.MinimumPremium.Round(2)
	}

	monthly := annual.Div(decimal.NewFromInt(12)).Round(2)

	return valueobject.PremiumBreakdown{
		BasePremium:      base,
		Adjustments:      adjustments,
		TotalAdjustments: totalAdjustments,
		Subtotal:         subtotal,
		StateTax:         stateTax,
		PolicyFee:        c.PolicyFee,
		AnnualPremium:    annual,
		MonthlyPremium:   monthly,
		MinimumPremium:   rate.MinimumPremium,
	}
}

// adjustments derives the multiplicative rating adjustments. Surcharges
// carry positive amounts, discounts negative ones.
func (c *PremiumCalculator) adjustments(
	request valueobject.QuoteRequest,
	assessment valueobject.RiskAssessment,
	base decimal.Decimal,
) []valueobject.PremiumAdjustment {
	var out []valueobject.PremiumAdjustment

	switch assessment.Tier {
	case valueobject.TierPreferred:
		out = append(out, valueobject.PremiumAdjustment{
			Code:        "PREF-DISC",
			Description: "preferred risk tier discount",
			Type:        valueobject.AdjustmentDiscount,
			Factor:      c.PreferredDiscount,
			Amount:      base.Mul(c.PreferredDiscount).Round(2).Neg(),
		})
	case valueobject.TierNonStandard:
		out = append(out, valueobject.PremiumAdjustment{
			Code:        "NONSTD-SURCH",
			Description: "non-standard risk tier surcharge",
			Type:        valueobject.AdjustmentSurcharge,
			Factor:      c.NonStandardSurcharge,
			Amount:      base.Mul(c.NonStandardSurcharge).Round(2),
		})
	}

	if request.YearsInBusiness >= c.TenureDiscountYears {
		out = append(out, valueobject.PremiumAdjustment{
			Code:        "TENURE-DISC",
			Description: "established business tenure discount",
			Type:        valueobject.AdjustmentDiscount,
			Factor:      c.TenureDiscount,
			Amount:      base.Mul(c.TenureDiscount).Round(2).Neg(),
		})
	}

	if request.CoverageLimit.GreaterThan(c.LimitBaseline) {
		steps := request.CoverageLimit.Sub(c.LimitBaseline).Div(c.LimitStep).Ceil()
		factor := c.LimitStepFactor.Mul(steps)
		if factor.GreaterThan(c.LimitSurchargeCap) {
			factor = c.LimitSurchargeCap
		}
		out = append(out, valueobject.PremiumAdjustment{
			Code:        "LIMIT-SURCH",
			Description: "coverage limit above baseline surcharge",
			Type:        valueobject.AdjustmentSurcharge,
			Factor:      factor,
			Amount:      base.Mul(factor).Round(2),
		})
	}

	return out
}
