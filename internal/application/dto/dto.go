package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RiskFactorInput is a raw risk factor as supplied by the caller.
type RiskFactorInput struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// CreateQuoteRequest carries the business profile and coverage selection
// for a full quote.
type CreateQuoteRequest struct {
	BusinessName       string            `json:"business_name"`
	TaxID              string            `json:"tax_id"`
	BusinessType       string            `json:"business_type"`
	ClassificationCode string            `json:"classification_code"`
	ProductType        string            `json:"product_type"`
	StateCode          string            `json:"state_code"`
	AnnualPayroll      decimal.Decimal   `json:"annual_payroll"`
	AnnualRevenue      decimal.Decimal   `json:"annual_revenue"`
	EmployeeCount      int               `json:"employee_count"`
	VehicleCount       int               `json:"vehicle_count"`
	RecordCount        int               `json:"record_count"`
	YearsInBusiness    int               `json:"years_in_business"`
	CoverageLimit      decimal.Decimal   `json:"coverage_limit"`
	Deductible         decimal.Decimal   `json:"deductible"`
	RiskFactors        []RiskFactorInput `json:"risk_factors,omitempty"`
	EffectiveDate      time.Time         `json:"effective_date,omitzero"`
}

// EstimatePremiumRequest carries the minimal fields for a fast premium
// preview. Risk data is never supplied; the neutral assessment is used.
type EstimatePremiumRequest struct {
	ClassificationCode string          `json:"classification_code"`
	ProductType        string          `json:"product_type"`
	StateCode          string          `json:"state_code"`
	AnnualPayroll      decimal.Decimal `json:"annual_payroll"`
	AnnualRevenue      decimal.Decimal `json:"annual_revenue"`
	EmployeeCount      int             `json:"employee_count"`
	VehicleCount       int             `json:"vehicle_count"`
	RecordCount        int             `json:"record_count"`
	YearsInBusiness    int             `json:"years_in_business"`
	CoverageLimit      decimal.Decimal `json:"coverage_limit"`
}

// GetQuoteRequest identifies a stored quote.
type GetQuoteRequest struct {
	QuoteNumber string `json:"quote_number"`
}

// ListQuotesRequest identifies a business's quote history.
type ListQuotesRequest struct {
	TaxID string `json:"tax_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// QuoteResponse is the external representation of a quote. Currency fields
// are decimals serialised with full precision; enumerations use their
// symbolic names.
type QuoteResponse struct {
	QuoteNumber      string                          `json:"quote_number"`
	Status           string                          `json:"status"`
	Request          valueobject.QuoteRequest        `json:"request"`
	Rate             valueobject.RateTableEntry      `json:"rate"`
	ResolutionLevel  string                          `json:"resolution_level"`
	Assessment       valueobject.RiskAssessment      `json:"risk_assessment"`
	Premium          valueobject.PremiumBreakdown    `json:"premium"`
	Eligibility      valueobject.EligibilityResult   `json:"eligibility"`
	IssuedAt         time.Time                       `json:"issued_at"`
	ExpiresAt        time.Time                       `json:"expires_at"`
	PolicyEffective  time.Time                       `json:"policy_effective"`
	PolicyExpiration time.Time                       `json:"policy_expiration"`
	ProcessingMillis int64                           `json:"processing_millis"`
}

// PremiumEstimateResponse is the no-persistence premium preview.
type PremiumEstimateResponse struct {
	Premium         valueobject.PremiumBreakdown `json:"premium"`
	RiskScore       decimal.Decimal              `json:"risk_score"`
	RiskTier        string                       `json:"risk_tier"`
	ResolutionLevel string                       `json:"resolution_level"`
	Notes           []string                     `json:"notes,omitempty"`
}

// QuoteHistoryResponse is a business's quote history, newest first.
type QuoteHistoryResponse struct {
	TaxID  string          `json:"tax_id"`
	Quotes []QuoteResponse `json:"quotes"`
}
