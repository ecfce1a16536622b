package valueobject

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest is the immutable input to the quoting engine. Callers are
// responsible for field-level validation; the engine only applies the
// defensive clamps in Normalized.
type QuoteRequest struct {
	BusinessName       string          `json:"business_name"`
	TaxID              string          `json:"tax_id"`
	BusinessType       BusinessType    `json:"business_type"`
	ClassificationCode string          `json:"classification_code"`
	ProductType        ProductType     `json:"product_type"`
	StateCode          string          `json:"state_code"`
	AnnualPayroll      decimal.Decimal `json:"annual_payroll"`
	AnnualRevenue      decimal.Decimal `json:"annual_revenue"`
	EmployeeCount      int             `json:"employee_count"`
	VehicleCount       int             `json:"vehicle_count"`
	RecordCount        int             `json:"record_count"`
	YearsInBusiness    int             `json:"years_in_business"`
	CoverageLimit      decimal.Decimal `json:"coverage_limit"`
	Deductible         decimal.Decimal `json:"deductible"`
	RiskFactors        []RiskFactor    `json:"risk_factors,omitempty"`
	EffectiveDate      time.Time       `json:"effective_date,omitzero"`
}

// Normalized returns a copy with the defensive clamps applied: the state
// code is uppercased and the employee count is floored at 1. No business
// invariants are re-validated here.
func (r QuoteRequest) Normalized() QuoteRequest {
	out := r
	out.StateCode = strings.ToUpper(strings.TrimSpace(r.StateCode))
	if out.EmployeeCount < 1 {
		out.EmployeeCount = 1
	}
	return out
}

var exposureUnit = decimal.NewFromInt(1000)

// ExposureUnits returns the number of rating units for the product's
// exposure basis: thousands of payroll or revenue dollars, vehicles, or
// thousands of records.
func (r QuoteRequest) ExposureUnits() decimal.Decimal {
	switch r.ProductType.ExposureBasis() {
	case ExposurePayroll:
		return r.AnnualPayroll.Div(exposureUnit)
	case ExposureRevenue:
		return r.AnnualRevenue.Div(exposureUnit)
	case ExposureVehicles:
		return decimal.NewFromInt(int64(r.VehicleCount))
	case ExposureRecords:
		return decimal.NewFromInt(int64(r.RecordCount)).Div(exposureUnit)
	default:
		return decimal.Zero
	}
}
