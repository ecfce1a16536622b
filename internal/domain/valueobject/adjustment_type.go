package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AdjustmentType classifies a premium adjustment. Discounts and credits
// carry negative amounts; surcharges and debits carry positive amounts.
type AdjustmentType string

const (
	AdjustmentDiscount  AdjustmentType = "DISCOUNT"
	AdjustmentSurcharge AdjustmentType = "SURCHARGE"
	AdjustmentCredit    AdjustmentType = "CREDIT"
	AdjustmentDebit     AdjustmentType = "DEBIT"
)

// NewAdjustmentType validates and returns an AdjustmentType from its symbolic name.
func NewAdjustmentType(s string) (AdjustmentType, error) {
	switch at := AdjustmentType(s); at {
	case AdjustmentDiscount, AdjustmentSurcharge, AdjustmentCredit, AdjustmentDebit:
		return at, nil
	default:
		return "", fmt.Errorf("unknown adjustment type %q", s)
	}
}

// String returns the symbolic name used on the wire.
func (a AdjustmentType) String() string { return string(a) }

// PremiumAdjustment is a single multiplicative rating adjustment applied to
// the base premium.
type PremiumAdjustment struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Type        AdjustmentType  `json:"type"`
	Factor      decimal.Decimal `json:"factor"`
	Amount      decimal.Decimal `json:"amount"`
}
