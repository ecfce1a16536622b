package valueobject

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultKey is the wildcard used for state-level and global default rate
// entries in the fallback chain.
const DefaultKey = "DEFAULT"

// RateTableEntry is a read-only reference rate for a
// (state, classification, product) triple. BaseRate is expressed per
// exposure unit of the product line (per $1,000 of payroll or revenue, per
// vehicle, or per 1,000 records). Entries are looked up, never mutated.
type RateTableEntry struct {
	StateCode          string          `json:"state_code"`
	ClassificationCode string          `json:"classification_code"`
	ProductType        ProductType     `json:"product_type"`
	BaseRate           decimal.Decimal `json:"base_rate"`
	MinimumPremium     decimal.Decimal `json:"minimum_premium"`
	StateTaxRate       decimal.Decimal `json:"state_tax_rate"`
	Active             bool            `json:"active"`
	EffectiveDate      time.Time       `json:"effective_date"`
	ExpirationDate     time.Time       `json:"expiration_date"`

	// Synthetic marks the sentinel entry returned when every fallback
	// level missed. Downstream components short-circuit on it instead of
	// raising an error.
	Synthetic bool `json:"synthetic,omitempty"`
}

// NewRateTableEntry creates a validated rate table entry.
func NewRateTableEntry(
	stateCode, classificationCode string,
	productType ProductType,
	baseRate, minimumPremium, stateTaxRate decimal.Decimal,
	effectiveDate, expirationDate time.Time,
) (RateTableEntry, error) {
	if stateCode == "" {
		return RateTableEntry{}, fmt.Errorf("state code is required")
	}
	if classificationCode == "" {
		return RateTableEntry{}, fmt.Errorf("classification code is required")
	}
	if _, err := NewProductType(productType.String()); err != nil {
		return RateTableEntry{}, err
	}
	if baseRate.IsNegative() {
		return RateTableEntry{}, fmt.Errorf("base rate must not be negative")
	}
	if minimumPremium.IsNegative() {
		return RateTableEntry{}, fmt.Errorf("minimum premium must not be negative")
	}
	if stateTaxRate.IsNegative() || stateTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return RateTableEntry{}, fmt.Errorf("state tax rate must be between 0 and 1")
	}
	if !expirationDate.IsZero() && !effectiveDate.IsZero() && !expirationDate.After(effectiveDate) {
		return RateTableEntry{}, fmt.Errorf("expiration date must be after effective date")
	}

	return RateTableEntry{
		StateCode:          stateCode,
		ClassificationCode: classificationCode,
		ProductType:        productType,
		BaseRate:           baseRate,
		MinimumPremium:     minimumPremium,
		StateTaxRate:       stateTaxRate,
		Active:             true,
		EffectiveDate:      effectiveDate,
		ExpirationDate:     expirationDate,
	}, nil
}

// SyntheticRateEntry returns the zero-rate sentinel for a product. It is
// produced only when the global default is missing from the rate table.
func SyntheticRateEntry(productType ProductType) RateTableEntry {
	return RateTableEntry{
		StateCode:          DefaultKey,
		ClassificationCode: DefaultKey,
		ProductType:        productType,
		BaseRate:           decimal.Zero,
		MinimumPremium:     decimal.Zero,
		StateTaxRate:       decimal.Zero,
		Active:             false,
		Synthetic:          true,
	}
}

// ActiveOn reports whether the entry is active at the given time, honouring
// open-ended effective and expiration dates.
func (e RateTableEntry) ActiveOn(at time.Time) bool {
	if !e.Active {
		return false
	}
	if !e.EffectiveDate.IsZero() && at.Before(e.EffectiveDate) {
		return false
	}
	if !e.ExpirationDate.IsZero() && !at.Before(e.ExpirationDate) {
		return false
	}
	return true
}
