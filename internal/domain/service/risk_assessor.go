package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// Fixed factor weights; they sum to 1.0.
var factorWeights = map[valueobject.RiskFactorType]decimal.Decimal{
	valueobject.FactorCredit:     decimal.NewFromFloat(0.30),
	valueobject.FactorClaims:     decimal.NewFromFloat(0.30),
	valueobject.FactorSafety:     decimal.NewFromFloat(0.20),
	valueobject.FactorExperience: decimal.NewFromFloat(0.10),
	valueobject.FactorIndustry:   decimal.NewFromFloat(0.10),
}

// neutralSubScore stands in for any factor type the caller did not supply,
// so partial input never skews the aggregate.
var neutralSubScore = decimal.NewFromInt(50)

var (
	scoreFloor   = decimal.Zero
	scoreCeiling = decimal.NewFromInt(100)
)

// RiskAssessor computes a weighted 0-100 risk score and tier from raw risk
// factors. Higher is worse. It is pure and safe for concurrent use.
type RiskAssessor struct{}

// NewRiskAssessor returns a new assessor instance.
func NewRiskAssessor() *RiskAssessor {
	return &RiskAssessor{}
}

// Assess scores the supplied factors. Every factor type contributes: types
// missing from the input count as a neutral 50. When a type appears more
// than once the last occurrence wins. An empty input therefore yields the
// neutral assessment (score 50, STANDARD) used for quick estimates.
func (a *RiskAssessor) Assess(factors []valueobject.RiskFactor) valueobject.RiskAssessment {
	supplied := make(map[valueobject.RiskFactorType]decimal.Decimal, len(factors))
	for _, f := range factors {
		if _, known := factorWeights[f.Type]; known {
			supplied[f.Type] = f.Value
		}
	}

	var (
		scores   []valueobject.RiskFactorScore
		total    = decimal.Zero
		notes    []string
		defaults []string
	)

	for _, ft := range valueobject.AllRiskFactorTypes() {
		weight := factorWeights[ft]

		sub := neutralSubScore
		if raw, ok := supplied[ft]; ok {
			sub = subScore(ft, raw)
		} else {
			defaults = append(defaults, ft.String())
		}

		scores = append(scores, valueobject.RiskFactorScore{
			Type:   ft,
			Score:  sub,
			Weight: weight,
			Impact: impactLabel(sub),
		})
		total = total.Add(weight.Mul(sub))
	}

	score := clampScore(total).Round(2)
	tier := valueobject.TierForScore(score)

	if len(supplied) == 0 {
		notes = append(notes, "neutral assessment: no risk factors supplied")
	} else if len(defaults) > 0 {
		notes = append(notes, fmt.Sprintf("neutral sub-score assumed for: %s", strings.Join(defaults, ", ")))
	}

	return valueobject.RiskAssessment{
		Score:        score,
		Tier:         tier,
		FactorScores: scores,
		Notes:        notes,
	}
}

// subScore normalises a raw factor value to a 0-100 sub-score where higher
// means worse risk. Each function is monotone non-decreasing in severity.
func subScore(ft valueobject.RiskFactorType, raw decimal.Decimal) decimal.Decimal {
	switch ft {
	case valueobject.FactorCredit:
		// 300-850 credit score; 850 maps to 0, 300 maps to 100.
		return clampScore(decimal.NewFromInt(850).Sub(raw).Div(decimal.NewFromFloat(5.5)))
	case valueobject.FactorClaims:
		// 20 points per claim in the last 5 years.
		return clampScore(raw.Mul(decimal.NewFromInt(20)))
	case valueobject.FactorSafety:
		// 25 points per recorded violation.
		return clampScore(raw.Mul(decimal.NewFromInt(25)))
	case valueobject.FactorExperience:
		// 20+ years of operating experience scores 0.
		return clampScore(scoreCeiling.Sub(raw.Mul(decimal.NewFromInt(5))))
	case valueobject.FactorIndustry:
		// Hazard grade 1-10.
		return clampScore(raw.Mul(decimal.NewFromInt(10)))
	default:
		return neutralSubScore
	}
}

func clampScore(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(scoreFloor) {
		return scoreFloor
	}
	if d.GreaterThan(scoreCeiling) {
		return scoreCeiling
	}
	return d
}

// impactLabel returns a human-readable impact label for a sub-score.
func impactLabel(score decimal.Decimal) string {
	switch {
	case score.LessThanOrEqual(decimal.NewFromInt(30)):
		return "POSITIVE"
	case score.LessThanOrEqual(decimal.NewFromInt(60)):
		return "NEUTRAL"
	default:
		return "NEGATIVE"
	}
}
