package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskFactorType identifies the category of a risk factor.
type RiskFactorType string

const (
	FactorCredit     RiskFactorType = "CREDIT"     // business credit score, 300-850
	FactorClaims     RiskFactorType = "CLAIMS"     // claims filed in the last 5 years
	FactorSafety     RiskFactorType = "SAFETY"     // recorded safety violations
	FactorExperience RiskFactorType = "EXPERIENCE" // years of operating experience
	FactorIndustry   RiskFactorType = "INDUSTRY"   // industry hazard grade, 1-10
)

// AllRiskFactorTypes lists every scored factor category.
func AllRiskFactorTypes() []RiskFactorType {
	return []RiskFactorType{
		FactorCredit,
		FactorClaims,
		FactorSafety,
		FactorExperience,
		FactorIndustry,
	}
}

// NewRiskFactorType validates and returns a RiskFactorType from its symbolic name.
func NewRiskFactorType(s string) (RiskFactorType, error) {
	ft := RiskFactorType(s)
	for _, known := range AllRiskFactorTypes() {
		if ft == known {
			return ft, nil
		}
	}
	return "", fmt.Errorf("unknown risk factor type %q", s)
}

// String returns the symbolic name used on the wire.
func (f RiskFactorType) String() string { return string(f) }

// RiskFactor is a raw, unscored input to risk assessment.
type RiskFactor struct {
	Type  RiskFactorType  `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// RiskFactorScore is a scored factor: the normalized 0-100 sub-score
// (higher is worse risk), the fixed weight for the factor type, and a
// human-readable impact label.
type RiskFactorScore struct {
	Type   RiskFactorType  `json:"type"`
	Score  decimal.Decimal `json:"score"`
	Weight decimal.Decimal `json:"weight"`
	Impact string          `json:"impact"`
}
