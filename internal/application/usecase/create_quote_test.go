package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/application/usecase"
	"github.com/fchchen/quote-engine/internal/domain/model"
	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/service"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
	"github.com/fchchen/quote-engine/pkg/events"
)

// --- Mock implementations ---

type mockRateLookup struct {
	findFunc func(ctx context.Context, state, classification string, productType valueobject.ProductType) (valueobject.RateTableEntry, error)
}

func (m *mockRateLookup) Find(ctx context.Context, state, classification string, productType valueobject.ProductType) (valueobject.RateTableEntry, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, state, classification, productType)
	}
	return valueobject.RateTableEntry{}, port.ErrRateNotFound
}

type mockQuoteRepo struct {
	saved        []model.Quote
	findFunc     func(ctx context.Context, number string) (model.Quote, error)
	probeResults []error // consumed by FindByNumber when findFunc is nil
}

func (m *mockQuoteRepo) Save(_ context.Context, quote model.Quote) error {
	m.saved = append(m.saved, quote)
	return nil
}

func (m *mockQuoteRepo) FindByNumber(ctx context.Context, number string) (model.Quote, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, number)
	}
	if len(m.probeResults) > 0 {
		err := m.probeResults[0]
		m.probeResults = m.probeResults[1:]
		return model.Quote{}, err
	}
	return model.Quote{}, port.ErrQuoteNotFound
}

func (m *mockQuoteRepo) ListByTaxID(_ context.Context, _ string) ([]model.Quote, error) {
	return nil, nil
}

type mockPublisher struct {
	topics    []string
	published []events.DomainEvent
}

func (m *mockPublisher) Publish(_ context.Context, topic string, evts ...events.DomainEvent) error {
	m.topics = append(m.topics, topic)
	m.published = append(m.published, evts...)
	return nil
}

// --- Fixtures ---

func caWorkersCompLookup(t *testing.T) *mockRateLookup {
	t.Helper()
	now := time.Now().UTC()
	entry, err := valueobject.NewRateTableEntry(
		"CA", "8810", valueobject.ProductWorkersComp,
		decimal.NewFromFloat(2.50), decimal.NewFromInt(500), decimal.NewFromFloat(0.0328),
		now.AddDate(0, -1, 0), now.AddDate(1, 0, 0),
	)
	require.NoError(t, err)

	return &mockRateLookup{
		findFunc: func(_ context.Context, state, classification string, _ valueobject.ProductType) (valueobject.RateTableEntry, error) {
			if state == "CA" && classification == "8810" {
				return entry, nil
			}
			return valueobject.RateTableEntry{}, port.ErrRateNotFound
		},
	}
}

func newCreateQuote(lookup port.RateLookup, repo port.QuoteRepository, publisher port.EventPublisher) *usecase.CreateQuote {
	return usecase.NewCreateQuote(
		service.NewRateResolver(lookup),
		service.NewRiskAssessor(),
		service.NewPremiumCalculator(),
		service.NewEligibilityEvaluator(),
		repo,
		publisher,
	)
}

func validRequest() dto.CreateQuoteRequest {
	return dto.CreateQuoteRequest{
		BusinessName:       "Accurate Books LLC",
		TaxID:              "95-1234567",
		BusinessType:       "LLC",
		ClassificationCode: "8810",
		ProductType:        "WORKERS_COMP",
		StateCode:          "ca",
		AnnualPayroll:      decimal.NewFromInt(300_000),
		AnnualRevenue:      decimal.NewFromInt(2_000_000),
		EmployeeCount:      12,
		YearsInBusiness:    3,
		CoverageLimit:      decimal.NewFromInt(1_000_000),
	}
}

var quoteNumberPattern = regexp.MustCompile(`^QT-\d{8}-[0-9A-F]{8}$`)

// --- Tests ---

func TestCreateQuote_Execute(t *testing.T) {
	t.Run("issues a standard quote end to end", func(t *testing.T) {
		repo := &mockQuoteRepo{}
		publisher := &mockPublisher{}
		uc := newCreateQuote(caWorkersCompLookup(t), repo, publisher)

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Regexp(t, quoteNumberPattern, resp.QuoteNumber)
		assert.Equal(t, "QUOTED", resp.Status)
		assert.Equal(t, "EXACT", resp.ResolutionLevel)
		assert.Equal(t, "CA", resp.Request.StateCode, "state is normalised")
		assert.True(t, decimal.RequireFromString("1024.60").Equal(resp.Premium.AnnualPremium),
			"annual premium was %s", resp.Premium.AnnualPremium)
		assert.True(t, decimal.RequireFromString("85.38").Equal(resp.Premium.MonthlyPremium))
		assert.Equal(t, valueobject.TierStandard, resp.Assessment.Tier, "no factors yields the neutral tier")

		require.Len(t, repo.saved, 1)
		require.Len(t, publisher.published, 1)
		assert.Equal(t, []string{usecase.TopicQuotes}, publisher.topics)
		assert.Equal(t, "quoting.quote.issued", publisher.published[0].EventType())
		assert.Equal(t, resp.QuoteNumber, publisher.published[0].AggregateID())
	})

	t.Run("quote expires 30 days after issue", func(t *testing.T) {
		repo := &mockQuoteRepo{}
		uc := newCreateQuote(caWorkersCompLookup(t), repo, &mockPublisher{})

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, resp.IssuedAt.Add(30*24*time.Hour), resp.ExpiresAt)
		assert.Equal(t, resp.PolicyEffective.AddDate(1, 0, 0), resp.PolicyExpiration)
	})

	t.Run("declined quote is persisted and published", func(t *testing.T) {
		repo := &mockQuoteRepo{}
		publisher := &mockPublisher{}
		uc := newCreateQuote(caWorkersCompLookup(t), repo, publisher)

		req := validRequest()
		req.AnnualRevenue = decimal.NewFromInt(10_000) // below appetite
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err, "a decline is a result, not an error")
		assert.Equal(t, "DECLINED", resp.Status)
		assert.False(t, resp.Eligibility.Eligible)
		require.Len(t, repo.saved, 1, "declined quotes are kept for history")
		require.Len(t, publisher.published, 1)
		assert.Equal(t, "quoting.quote.declined", publisher.published[0].EventType())
	})

	t.Run("non-standard risk is referred, not declined", func(t *testing.T) {
		repo := &mockQuoteRepo{}
		uc := newCreateQuote(caWorkersCompLookup(t), repo, &mockPublisher{})

		req := validRequest()
		req.RiskFactors = []dto.RiskFactorInput{
			{Type: "CLAIMS", Value: decimal.NewFromInt(4)},
			{Type: "SAFETY", Value: decimal.NewFromInt(4)},
		}
		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "REFERRED", resp.Status)
		assert.True(t, resp.Eligibility.Eligible)
		assert.True(t, resp.Eligibility.Referred)
	})

	t.Run("missing rate yields a declined quote with zero premium", func(t *testing.T) {
		repo := &mockQuoteRepo{}
		publisher := &mockPublisher{}
		uc := newCreateQuote(&mockRateLookup{}, repo, publisher)

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err, "a resolution miss is never an error")
		assert.Equal(t, "DECLINED", resp.Status)
		assert.Equal(t, "NONE", resp.ResolutionLevel)
		assert.True(t, resp.Premium.AnnualPremium.IsZero())
		require.NotEmpty(t, resp.Eligibility.Messages)
		assert.Contains(t, resp.Eligibility.Messages[len(resp.Eligibility.Messages)-1], "no applicable rate on file")
		require.Len(t, repo.saved, 1)
	})

	t.Run("regenerates the quote number on collision", func(t *testing.T) {
		repo := &mockQuoteRepo{probeResults: []error{nil, port.ErrQuoteNotFound}}
		uc := newCreateQuote(caWorkersCompLookup(t), repo, &mockPublisher{})

		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Regexp(t, quoteNumberPattern, resp.QuoteNumber)
		require.Len(t, repo.saved, 1)
	})

	t.Run("rejects unknown product type", func(t *testing.T) {
		repo := &mockQuoteRepo{}
		uc := newCreateQuote(caWorkersCompLookup(t), repo, &mockPublisher{})

		req := validRequest()
		req.ProductType = "PET_INSURANCE"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid product type")
		assert.Empty(t, repo.saved)
	})

	t.Run("rejects missing tax ID", func(t *testing.T) {
		uc := newCreateQuote(caWorkersCompLookup(t), &mockQuoteRepo{}, &mockPublisher{})

		req := validRequest()
		req.TaxID = ""
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tax ID is required")
	})

	t.Run("rejects negative payroll", func(t *testing.T) {
		uc := newCreateQuote(caWorkersCompLookup(t), &mockQuoteRepo{}, &mockPublisher{})

		req := validRequest()
		req.AnnualPayroll = decimal.NewFromInt(-1)
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})

	t.Run("rejects unknown risk factor type", func(t *testing.T) {
		uc := newCreateQuote(caWorkersCompLookup(t), &mockQuoteRepo{}, &mockPublisher{})

		req := validRequest()
		req.RiskFactors = []dto.RiskFactorInput{{Type: "ASTROLOGY", Value: decimal.NewFromInt(3)}}
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid risk factor")
	})
}
