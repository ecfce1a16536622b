package valueobject

import "github.com/shopspring/decimal"

// RiskAssessment is the aggregate output of risk scoring. Score is bounded
// to [0, 100]; Tier is a monotone, deterministic function of Score.
type RiskAssessment struct {
	Score        decimal.Decimal   `json:"risk_score"`
	Tier         RiskTier          `json:"risk_tier"`
	FactorScores []RiskFactorScore `json:"factor_scores,omitempty"`
	Notes        []string          `json:"notes,omitempty"`
}
