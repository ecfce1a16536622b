package grpc

// messages.go defines the wire messages for quoting.v1.QuoteService. These
// structs stand in for buf-generated code and serialise through the JSON
// codec; monetary fields travel as decimal strings so no precision is lost
// on the wire.

// RiskFactor is a raw underwriting input.
type RiskFactor struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// PremiumAdjustment is one itemised discount or surcharge.
type PremiumAdjustment struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Factor      string `json:"factor"`
	Amount      string `json:"amount"`
}

// PremiumBreakdown itemises the premium calculation.
type PremiumBreakdown struct {
	BasePremium      string              `json:"base_premium"`
	Adjustments      []PremiumAdjustment `json:"adjustments,omitempty"`
	TotalAdjustments string              `json:"total_adjustments"`
	Subtotal         string              `json:"subtotal"`
	StateTax         string              `json:"state_tax"`
	PolicyFee        string              `json:"policy_fee"`
	AnnualPremium    string              `json:"annual_premium"`
	MonthlyPremium   string              `json:"monthly_premium"`
	MinimumPremium   string              `json:"minimum_premium"`
}

// FactorScore is one weighted component of the risk score.
type FactorScore struct {
	Type   string `json:"type"`
	Score  string `json:"score"`
	Weight string `json:"weight"`
	Impact string `json:"impact"`
}

// RiskAssessment is the scored risk profile.
type RiskAssessment struct {
	RiskScore    string        `json:"risk_score"`
	RiskTier     string        `json:"risk_tier"`
	FactorScores []FactorScore `json:"factor_scores,omitempty"`
	Notes        []string      `json:"notes,omitempty"`
}

// Eligibility is the decline/referral outcome.
type Eligibility struct {
	IsEligible bool     `json:"is_eligible"`
	Referred   bool     `json:"referred"`
	Messages   []string `json:"messages,omitempty"`
}

// Quote is the full quote representation returned to callers.
type Quote struct {
	QuoteNumber        string           `json:"quote_number"`
	Status             string           `json:"status"`
	BusinessName       string           `json:"business_name"`
	TaxID              string           `json:"tax_id"`
	ProductType        string           `json:"product_type"`
	StateCode          string           `json:"state_code"`
	ClassificationCode string           `json:"classification_code"`
	ResolutionLevel    string           `json:"resolution_level"`
	RiskAssessment     *RiskAssessment  `json:"risk_assessment,omitempty"`
	Premium            *PremiumBreakdown `json:"premium,omitempty"`
	Eligibility        *Eligibility     `json:"eligibility,omitempty"`
	IssuedAt           string           `json:"issued_at"`
	ExpiresAt          string           `json:"expires_at"`
	PolicyEffective    string           `json:"policy_effective"`
	PolicyExpiration   string           `json:"policy_expiration"`
}

// CreateQuoteRequest is the full quoting input.
type CreateQuoteRequest struct {
	BusinessName       string       `json:"business_name"`
	TaxID              string       `json:"tax_id"`
	BusinessType       string       `json:"business_type"`
	ClassificationCode string       `json:"classification_code"`
	ProductType        string       `json:"product_type"`
	StateCode          string       `json:"state_code"`
	AnnualPayroll      string       `json:"annual_payroll"`
	AnnualRevenue      string       `json:"annual_revenue"`
	EmployeeCount      int          `json:"employee_count"`
	VehicleCount       int          `json:"vehicle_count"`
	RecordCount        int          `json:"record_count"`
	YearsInBusiness    int          `json:"years_in_business"`
	CoverageLimit      string       `json:"coverage_limit"`
	Deductible         string       `json:"deductible"`
	RiskFactors        []RiskFactor `json:"risk_factors,omitempty"`
	EffectiveDate      string       `json:"effective_date,omitempty"`
}

// CreateQuoteResponse wraps the stored quote.
type CreateQuoteResponse struct {
	Quote *Quote `json:"quote"`
}

// EstimatePremiumRequest is the fast premium preview input.
type EstimatePremiumRequest struct {
	ClassificationCode string `json:"classification_code"`
	ProductType        string `json:"product_type"`
	StateCode          string `json:"state_code"`
	AnnualPayroll      string `json:"annual_payroll"`
	AnnualRevenue      string `json:"annual_revenue"`
	EmployeeCount      int    `json:"employee_count"`
	VehicleCount       int    `json:"vehicle_count"`
	RecordCount        int    `json:"record_count"`
	YearsInBusiness    int    `json:"years_in_business"`
	CoverageLimit      string `json:"coverage_limit"`
}

// EstimatePremiumResponse carries the preview figures. Nothing is persisted.
type EstimatePremiumResponse struct {
	Premium         *PremiumBreakdown `json:"premium"`
	RiskScore       string            `json:"risk_score"`
	RiskTier        string            `json:"risk_tier"`
	ResolutionLevel string            `json:"resolution_level"`
	Notes           []string          `json:"notes,omitempty"`
}

// GetQuoteRequest identifies a stored quote.
type GetQuoteRequest struct {
	QuoteNumber string `json:"quote_number"`
}

// GetQuoteResponse wraps the stored quote.
type GetQuoteResponse struct {
	Quote *Quote `json:"quote"`
}

// ListQuotesRequest identifies a business's history.
type ListQuotesRequest struct {
	TaxID string `json:"tax_id"`
}

// ListQuotesResponse is the history, newest first.
type ListQuotesResponse struct {
	TaxID  string   `json:"tax_id"`
	Quotes []*Quote `json:"quotes"`
}
