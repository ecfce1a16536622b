package event

import (
	"github.com/shopspring/decimal"

	"github.com/fchchen/quote-engine/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// QuoteIssued is raised when a quote is created for an eligible business.
type QuoteIssued struct {
	events.BaseEvent
	TaxID         string          `json:"tax_id"`
	ProductType   string          `json:"product_type"`
	StateCode     string          `json:"state_code"`
	RiskTier      string          `json:"risk_tier"`
	AnnualPremium decimal.Decimal `json:"annual_premium"`
	Referred      bool            `json:"referred"`
}

// NewQuoteIssued creates a QuoteIssued event keyed by quote number.
func NewQuoteIssued(
	quoteNumber, taxID, productType, stateCode, riskTier string,
	annualPremium decimal.Decimal,
	referred bool,
) QuoteIssued {
	return QuoteIssued{
		BaseEvent:     events.NewBaseEvent("quoting.quote.issued", quoteNumber, "Quote"),
		TaxID:         taxID,
		ProductType:   productType,
		StateCode:     stateCode,
		RiskTier:      riskTier,
		AnnualPremium: annualPremium,
		Referred:      referred,
	}
}

// QuoteDeclined is raised when a quote is produced but the business is
// ineligible for coverage.
type QuoteDeclined struct {
	events.BaseEvent
	TaxID       string   `json:"tax_id"`
	ProductType string   `json:"product_type"`
	StateCode   string   `json:"state_code"`
	RiskTier    string   `json:"risk_tier"`
	Reasons     []string `json:"reasons,omitempty"`
}

// NewQuoteDeclined creates a QuoteDeclined event keyed by quote number.
func NewQuoteDeclined(
	quoteNumber, taxID, productType, stateCode, riskTier string,
	reasons []string,
) QuoteDeclined {
	return QuoteDeclined{
		BaseEvent:   events.NewBaseEvent("quoting.quote.declined", quoteNumber, "Quote"),
		TaxID:       taxID,
		ProductType: productType,
		StateCode:   stateCode,
		RiskTier:    riskTier,
		Reasons:     reasons,
	}
}
