package model

import (
	"fmt"
	"time"

	"github.com/fchchen/quote-engine/internal/domain/event"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
	"github.com/fchchen/quote-engine/pkg/events"
)

// QuoteValidity is how long an issued quote remains open for acceptance.
const QuoteValidity = 30 * 24 * time.Hour

// Quote is the root aggregate of the quoting bounded context. It is
// created once per orchestration call and is immutable thereafter; a
// business's history is only ever appended to, never rewritten.
type Quote struct {
	quoteNumber      string
	status           valueobject.QuoteStatus
	request          valueobject.QuoteRequest
	rate             valueobject.RateTableEntry
	resolutionLevel  valueobject.ResolutionLevel
	assessment       valueobject.RiskAssessment
	premium          valueobject.PremiumBreakdown
	eligibility      valueobject.EligibilityResult
	issuedAt         time.Time
	expiresAt        time.Time
	policyEffective  time.Time
	policyExpiration time.Time
	processingTime   time.Duration
	domainEvents     []events.DomainEvent
}

// NewQuote assembles a quote from the engine's outputs, derives its status
// and validity windows, and records the matching lifecycle event.
//
// The quote expires 30 days after issue. The policy takes effect on the
// requested date, or the calendar day after issue when none was requested,
// and runs for one year.
func NewQuote(
	quoteNumber string,
	request valueobject.QuoteRequest,
	rate valueobject.RateTableEntry,
	resolutionLevel valueobject.ResolutionLevel,
	assessment valueobject.RiskAssessment,
	premium valueobject.PremiumBreakdown,
	eligibility valueobject.EligibilityResult,
	issuedAt time.Time,
	processingTime time.Duration,
) (Quote, error) {
	if quoteNumber == "" {
		return Quote{}, fmt.Errorf("quote number is required")
	}
	if issuedAt.IsZero() {
		return Quote{}, fmt.Errorf("issue time is required")
	}

	effective := request.EffectiveDate
	if effective.IsZero() {
		effective = issuedAt.AddDate(0, 0, 1).Truncate(24 * time.Hour)
	}

	status := valueobject.StatusQuoted
	switch {
	case !eligibility.Eligible:
		status = valueobject.StatusDeclined
	case eligibility.Referred:
		status = valueobject.StatusReferred
	}

	q := Quote{
		quoteNumber:      quoteNumber,
		status:           status,
		request:          request,
		rate:             rate,
		resolutionLevel:  resolutionLevel,
		assessment:       assessment,
		premium:          premium,
		eligibility:      eligibility,
		issuedAt:         issuedAt,
		expiresAt:        issuedAt.Add(QuoteValidity),
		policyEffective:  effective,
		policyExpiration: effective.AddDate(1, 0, 0),
		processingTime:   processingTime,
	}

	if eligibility.Eligible {
		q.domainEvents = append(q.domainEvents, event.NewQuoteIssued(
			quoteNumber,
			request.TaxID,
			request.ProductType.String(),
			request.StateCode,
			assessment.Tier.String(),
			premium.AnnualPremium,
			eligibility.Referred,
		))
	} else {
		q.domainEvents = append(q.domainEvents, event.NewQuoteDeclined(
			quoteNumber,
			request.TaxID,
			request.ProductType.String(),
			request.StateCode,
			assessment.Tier.String(),
			eligibility.Messages,
		))
	}

	return q, nil
}

// ReconstructQuote recreates a Quote from persistence without validation or
// events.
func ReconstructQuote(
	quoteNumber string,
	status valueobject.QuoteStatus,
	request valueobject.QuoteRequest,
	rate valueobject.RateTableEntry,
	resolutionLevel valueobject.ResolutionLevel,
	assessment valueobject.RiskAssessment,
	premium valueobject.PremiumBreakdown,
	eligibility valueobject.EligibilityResult,
	issuedAt, expiresAt, policyEffective, policyExpiration time.Time,
	processingTime time.Duration,
) Quote {
	return Quote{
		quoteNumber:      quoteNumber,
		status:           status,
		request:          request,
		rate:             rate,
		resolutionLevel:  resolutionLevel,
		assessment:       assessment,
		premium:          premium,
		eligibility:      eligibility,
		issuedAt:         issuedAt,
		expiresAt:        expiresAt,
		policyEffective:  policyEffective,
		policyExpiration: policyExpiration,
		processingTime:   processingTime,
	}
}

// IsExpired reports whether the quote's acceptance window has closed.
func (q Quote) IsExpired(now time.Time) bool {
	return now.After(q.expiresAt)
}

// StatusAt returns the lifecycle status as of now. An open quote whose
// acceptance window has lapsed reads as EXPIRED; stored history is never
// rewritten.
func (q Quote) StatusAt(now time.Time) valueobject.QuoteStatus {
	open := q.status == valueobject.StatusQuoted || q.status == valueobject.StatusReferred
	if open && q.IsExpired(now) {
		return valueobject.StatusExpired
	}
	return q.status
}

// Accessors

func (q Quote) QuoteNumber() string                            { return q.quoteNumber }
func (q Quote) Status() valueobject.QuoteStatus                { return q.status }
func (q Quote) Request() valueobject.QuoteRequest              { return q.request }
func (q Quote) Rate() valueobject.RateTableEntry               { return q.rate }
func (q Quote) ResolutionLevel() valueobject.ResolutionLevel   { return q.resolutionLevel }
func (q Quote) Assessment() valueobject.RiskAssessment         { return q.assessment }
func (q Quote) Premium() valueobject.PremiumBreakdown          { return q.premium }
func (q Quote) Eligibility() valueobject.EligibilityResult     { return q.eligibility }
func (q Quote) IssuedAt() time.Time                            { return q.issuedAt }
func (q Quote) ExpiresAt() time.Time                           { return q.expiresAt }
func (q Quote) PolicyEffective() time.Time                     { return q.policyEffective }
func (q Quote) PolicyExpiration() time.Time                    { return q.policyExpiration }
func (q Quote) ProcessingTime() time.Duration                  { return q.processingTime }
func (q Quote) DomainEvents() []events.DomainEvent             { return q.domainEvents }
