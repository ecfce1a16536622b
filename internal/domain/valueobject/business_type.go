package valueobject

import "fmt"

// BusinessType is the legal structure of the applicant business.
type BusinessType string

const (
	BusinessLLC            BusinessType = "LLC"
	BusinessCorporation    BusinessType = "CORPORATION"
	BusinessSoleProprietor BusinessType = "SOLE_PROPRIETORSHIP"
	BusinessPartnership    BusinessType = "PARTNERSHIP"
	BusinessNonProfit      BusinessType = "NON_PROFIT"
)

// NewBusinessType validates and returns a BusinessType from its symbolic name.
func NewBusinessType(s string) (BusinessType, error) {
	switch bt := BusinessType(s); bt {
	case BusinessLLC, BusinessCorporation, BusinessSoleProprietor,
		BusinessPartnership, BusinessNonProfit:
		return bt, nil
	default:
		return "", fmt.Errorf("unknown business type %q", s)
	}
}

// String returns the symbolic name used on the wire.
func (b BusinessType) String() string { return string(b) }
