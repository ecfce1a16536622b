package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchchen/quote-engine/internal/domain/model"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

func quoteInputs() (valueobject.QuoteRequest, valueobject.RiskAssessment, valueobject.PremiumBreakdown) {
	request := valueobject.QuoteRequest{
		TaxID:       "95-1234567",
		ProductType: valueobject.ProductWorkersComp,
		StateCode:   "CA",
	}
	assessment := valueobject.RiskAssessment{
		Score: decimal.NewFromInt(50),
		Tier:  valueobject.TierStandard,
	}
	premium := valueobject.PremiumBreakdown{
		AnnualPremium: decimal.RequireFromString("1024.60"),
	}
	return request, assessment, premium
}

func TestNewQuote_StatusDerivation(t *testing.T) {
	request, assessment, premium := quoteInputs()
	issuedAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		eligibility valueobject.EligibilityResult
		wantStatus  valueobject.QuoteStatus
		wantEvent   string
	}{
		{
			name:        "eligible quotes as QUOTED",
			eligibility: valueobject.EligibilityResult{Eligible: true},
			wantStatus:  valueobject.StatusQuoted,
			wantEvent:   "quoting.quote.issued",
		},
		{
			name:        "referred but eligible quotes as REFERRED",
			eligibility: valueobject.EligibilityResult{Eligible: true, Referred: true},
			wantStatus:  valueobject.StatusReferred,
			wantEvent:   "quoting.quote.issued",
		},
		{
			name:        "ineligible quotes as DECLINED even when referred",
			eligibility: valueobject.EligibilityResult{Eligible: false, Referred: true},
			wantStatus:  valueobject.StatusDeclined,
			wantEvent:   "quoting.quote.declined",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := model.NewQuote(
				"QT-20260831-AAAA0001", request, valueobject.RateTableEntry{},
				valueobject.ResolutionExact, assessment, premium, tc.eligibility,
				issuedAt, time.Millisecond,
			)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, quote.Status())

			evts := quote.DomainEvents()
			require.Len(t, evts, 1)
			assert.Equal(t, tc.wantEvent, evts[0].EventType())
			assert.Equal(t, "QT-20260831-AAAA0001", evts[0].AggregateID())
		})
	}
}

func TestNewQuote_ValidityWindows(t *testing.T) {
	request, assessment, premium := quoteInputs()
	issuedAt := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	quote, err := model.NewQuote(
		"QT-20260831-AAAA0002", request, valueobject.RateTableEntry{},
		valueobject.ResolutionExact, assessment, premium,
		valueobject.EligibilityResult{Eligible: true},
		issuedAt, time.Millisecond,
	)
	require.NoError(t, err)

	assert.Equal(t, issuedAt.Add(model.QuoteValidity), quote.ExpiresAt())
	// No requested date: coverage starts the calendar day after issue.
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), quote.PolicyEffective())
	assert.Equal(t, quote.PolicyEffective().AddDate(1, 0, 0), quote.PolicyExpiration())

	assert.False(t, quote.IsExpired(issuedAt.AddDate(0, 0, 29)))
	assert.True(t, quote.IsExpired(issuedAt.AddDate(0, 0, 31)))
}

func TestQuote_StatusAt(t *testing.T) {
	request, assessment, premium := quoteInputs()
	issuedAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("open quote past its window reads as EXPIRED", func(t *testing.T) {
		quote, err := model.NewQuote(
			"QT-20260831-AAAA0006", request, valueobject.RateTableEntry{},
			valueobject.ResolutionExact, assessment, premium,
			valueobject.EligibilityResult{Eligible: true},
			issuedAt, time.Millisecond,
		)
		require.NoError(t, err)

		assert.Equal(t, valueobject.StatusQuoted, quote.StatusAt(issuedAt.AddDate(0, 0, 29)))
		assert.Equal(t, valueobject.StatusExpired, quote.StatusAt(issuedAt.AddDate(0, 0, 31)))
		// Stored status is untouched.
		assert.Equal(t, valueobject.StatusQuoted, quote.Status())
	})

	t.Run("declined quotes never expire", func(t *testing.T) {
		quote, err := model.NewQuote(
			"QT-20260831-AAAA0007", request, valueobject.RateTableEntry{},
			valueobject.ResolutionExact, assessment, premium,
			valueobject.EligibilityResult{Eligible: false},
			issuedAt, time.Millisecond,
		)
		require.NoError(t, err)

		assert.Equal(t, valueobject.StatusDeclined, quote.StatusAt(issuedAt.AddDate(1, 0, 0)))
	})
}

func TestNewQuote_RequestedEffectiveDateWins(t *testing.T) {
	request, assessment, premium := quoteInputs()
	request.EffectiveDate = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	quote, err := model.NewQuote(
		"QT-20260831-AAAA0003", request, valueobject.RateTableEntry{},
		valueobject.ResolutionExact, assessment, premium,
		valueobject.EligibilityResult{Eligible: true},
		time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC), time.Millisecond,
	)
	require.NoError(t, err)

	assert.Equal(t, request.EffectiveDate, quote.PolicyEffective())
}

func TestNewQuote_RequiresNumberAndIssueTime(t *testing.T) {
	request, assessment, premium := quoteInputs()

	_, err := model.NewQuote(
		"", request, valueobject.RateTableEntry{},
		valueobject.ResolutionExact, assessment, premium,
		valueobject.EligibilityResult{Eligible: true},
		time.Now().UTC(), 0,
	)
	assert.Error(t, err)

	_, err = model.NewQuote(
		"QT-20260831-AAAA0004", request, valueobject.RateTableEntry{},
		valueobject.ResolutionExact, assessment, premium,
		valueobject.EligibilityResult{Eligible: true},
		time.Time{}, 0,
	)
	assert.Error(t, err)
}

func TestReconstructQuote_EmitsNoEvents(t *testing.T) {
	request, assessment, premium := quoteInputs()
	now := time.Now().UTC()

	quote := model.ReconstructQuote(
		"QT-20260831-AAAA0005", valueobject.StatusQuoted, request,
		valueobject.RateTableEntry{}, valueobject.ResolutionExact,
		assessment, premium, valueobject.EligibilityResult{Eligible: true},
		now, now.Add(model.QuoteValidity), now, now.AddDate(1, 0, 0),
		5*time.Millisecond,
	)

	assert.Empty(t, quote.DomainEvents(), "rehydration must not republish history")
	assert.Equal(t, valueobject.StatusQuoted, quote.Status())
	assert.Equal(t, 5*time.Millisecond, quote.ProcessingTime())
}
