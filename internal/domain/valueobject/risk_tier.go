package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RiskTier is the coarse-grained underwriting bucket derived from the
// aggregate risk score.
type RiskTier string

const (
	TierPreferred   RiskTier = "PREFERRED"
	TierStandard    RiskTier = "STANDARD"
	TierNonStandard RiskTier = "NON_STANDARD"
	TierDecline     RiskTier = "DECLINE"
)

// NewRiskTier validates and returns a RiskTier from its symbolic name.
func NewRiskTier(s string) (RiskTier, error) {
	switch rt := RiskTier(s); rt {
	case TierPreferred, TierStandard, TierNonStandard, TierDecline:
		return rt, nil
	default:
		return "", fmt.Errorf("unknown risk tier %q", s)
	}
}

// String returns the symbolic name used on the wire.
func (r RiskTier) String() string { return string(r) }

// Tier thresholds. The mapping from score to tier is monotone: a higher
// score never yields a better tier.
var (
	tierStandardFloor    = decimal.NewFromInt(30)
	tierNonStandardFloor = decimal.NewFromInt(60)
	tierDeclineFloor     = decimal.NewFromInt(85)
)

// TierForScore maps an aggregate risk score (0-100) to its tier.
func TierForScore(score decimal.Decimal) RiskTier {
	switch {
	case score.LessThan(tierStandardFloor):
		return TierPreferred
	case score.LessThan(tierNonStandardFloor):
		return TierStandard
	case score.LessThan(tierDeclineFloor):
		return TierNonStandard
	default:
		return TierDecline
	}
}
