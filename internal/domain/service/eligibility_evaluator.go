package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// ProductRule holds the per-product underwriting appetite: hard floors and
// ceilings that decline, and the coverage limit above which a quote is
// referred for manual review.
type ProductRule struct {
	MinYearsInBusiness int
	MinEmployees       int
	MaxEmployees       int
	MinRevenue         decimal.Decimal
	MaxRevenue         decimal.Decimal
	ReferralLimit      decimal.Decimal
}

// EligibilityEvaluator decides accept/refer/decline from the risk
// assessment and business attributes. All applicable reasons are
// accumulated so the caller sees the complete rationale.
type EligibilityEvaluator struct {
	rules map[valueobject.ProductType]ProductRule
}

// NewEligibilityEvaluator returns an evaluator with the standard appetite
// rules per product line.
func NewEligibilityEvaluator() *EligibilityEvaluator {
	base := ProductRule{
		MinYearsInBusiness: 1,
		MinEmployees:       1,
		MaxEmployees:       1000,
		MinRevenue:         decimal.NewFromInt(25_000),
		MaxRevenue:         decimal.NewFromInt(50_000_000),
		ReferralLimit:      decimal.NewFromInt(5_000_000),
	}

	rules := make(map[valueobject.ProductType]ProductRule)
	for _, pt := range valueobject.AllProductTypes() {
		rules[pt] = base
	}

	wc := base
	wc.MinYearsInBusiness = 2
	wc.MaxEmployees = 500
	rules[valueobject.ProductWorkersComp] = wc

	auto := base
	auto.MinYearsInBusiness = 2
	rules[valueobject.ProductCommercialAuto] = auto

	prof := base
	prof.MinYearsInBusiness = 3
	rules[valueobject.ProductProfessionalLiability] = prof

	cyber := base
	cyber.ReferralLimit = decimal.NewFromInt(2_000_000)
	rules[valueobject.ProductCyberLiability] = cyber

	return &EligibilityEvaluator{rules: rules}
}

// Evaluate applies decline and referral rules. Decline conditions flip
// Eligible to false; referral conditions only add a message and mark the
// result referred. Evaluation never short-circuits.
func (e *EligibilityEvaluator) Evaluate(
	request valueobject.QuoteRequest,
	assessment valueobject.RiskAssessment,
) valueobject.EligibilityResult {
	rule := e.rules[request.ProductType]

	result := valueobject.EligibilityResult{Eligible: true}

	if assessment.Tier == valueobject.TierDecline {
		result.Eligible = false
		result.Messages = append(result.Messages,
			fmt.Sprintf("declined: risk score %s places the business in the DECLINE tier", assessment.Score))
	}

	if request.YearsInBusiness < rule.MinYearsInBusiness {
		result.Eligible = false
		result.Messages = append(result.Messages,
			fmt.Sprintf("declined: %s requires at least %d year(s) in business, have %d",
				request.ProductType, rule.MinYearsInBusiness, request.YearsInBusiness))
	}

	if request.EmployeeCount < rule.MinEmployees || request.EmployeeCount > rule.MaxEmployees {
		result.Eligible = false
		result.Messages = append(result.Messages,
			fmt.Sprintf("declined: employee count %d outside the %d-%d appetite for %s",
				request.EmployeeCount, rule.MinEmployees, rule.MaxEmployees, request.ProductType))
	}

	if request.AnnualRevenue.LessThan(rule.MinRevenue) || request.AnnualRevenue.GreaterThan(rule.MaxRevenue) {
		result.Eligible = false
		result.Messages = append(result.Messages,
			fmt.Sprintf("declined: annual revenue %s outside the %s-%s appetite for %s",
				request.AnnualRevenue, rule.MinRevenue, rule.MaxRevenue, request.ProductType))
	}

	if assessment.Tier == valueobject.TierNonStandard {
		result.Referred = true
		result.Messages = append(result.Messages,
			"referral: non-standard risk tier requires underwriter review")
	}

	if request.CoverageLimit.GreaterThan(rule.ReferralLimit) {
		result.Referred = true
		result.Messages = append(result.Messages,
			fmt.Sprintf("referral: coverage limit %s exceeds the %s referral threshold",
				request.CoverageLimit, rule.ReferralLimit))
	}

	return result
}
