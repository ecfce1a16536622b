package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/domain/model"
	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/service"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// TopicQuotes is the broker topic for quote lifecycle events.
const TopicQuotes = "quoting.quotes"

// maxNumberAttempts bounds the quote-number collision probe. The suffix is
// 4 random bytes, so a second attempt is already vanishingly rare.
const maxNumberAttempts = 5

// CreateQuote runs the full quoting pipeline: resolve rate, assess risk,
// calculate premium, evaluate eligibility, then assign a quote number and
// validity window and persist the result. Declined quotes are persisted
// too, so callers can see a quoted-but-declined price.
type CreateQuote struct {
	resolver   *service.RateResolver
	assessor   *service.RiskAssessor
	calculator *service.PremiumCalculator
	evaluator  *service.EligibilityEvaluator
	quotes     port.QuoteRepository
	publisher  port.EventPublisher
}

// NewCreateQuote creates the use case with its engine and port dependencies.
func NewCreateQuote(
	resolver *service.RateResolver,
	assessor *service.RiskAssessor,
	calculator *service.PremiumCalculator,
	evaluator *service.EligibilityEvaluator,
	quotes port.QuoteRepository,
	publisher port.EventPublisher,
) *CreateQuote {
	return &CreateQuote{
		resolver:   resolver,
		assessor:   assessor,
		calculator: calculator,
		evaluator:  evaluator,
		quotes:     quotes,
		publisher:  publisher,
	}
}

// Execute generates and stores a quote for the request.
func (uc *CreateQuote) Execute(ctx context.Context, req dto.CreateQuoteRequest) (dto.QuoteResponse, error) {
	started := time.Now()

	request, err := toQuoteRequest(req)
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	request = request.Normalized()

	rate, level, err := uc.resolver.Resolve(ctx, request.StateCode, request.ClassificationCode, request.ProductType)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("resolve rate: %w", err)
	}

	assessment := uc.assessor.Assess(request.RiskFactors)
	premium := uc.calculator.Calculate(request, assessment, rate)
	eligibility := uc.evaluator.Evaluate(request, assessment)

	// A resolution miss is not a fault: it surfaces as an ineligible
	// quote with an explanatory message.
	if rate.Synthetic {
		eligibility.Eligible = false
		eligibility.Messages = append(eligibility.Messages,
			fmt.Sprintf("declined: no applicable rate on file for %s/%s/%s",
				request.StateCode, request.ClassificationCode, request.ProductType))
	}

	issuedAt := time.Now().UTC()
	number, err := uc.nextQuoteNumber(ctx, issuedAt)
	if err != nil {
		return dto.QuoteResponse{}, err
	}

	quote, err := model.NewQuote(
		number, request, rate, level,
		assessment, premium, eligibility,
		issuedAt, time.Since(started),
	)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("assemble quote: %w", err)
	}

	if err := uc.quotes.Save(ctx, quote); err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("save quote: %w", err)
	}

	if evts := quote.DomainEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, TopicQuotes, evts...); err != nil {
			return dto.QuoteResponse{}, fmt.Errorf("publish events: %w", err)
		}
	}

	return toQuoteResponse(quote), nil
}

// nextQuoteNumber builds a QT-{yyyyMMdd}-{8 hex} identifier. Uniqueness is
// probabilistic by construction; the store is probed before accepting a
// number so a collision regenerates the suffix instead of overwriting
// history.
func (uc *CreateQuote) nextQuoteNumber(ctx context.Context, issuedAt time.Time) (string, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		id := uuid.New()
		number := fmt.Sprintf("QT-%s-%s",
			issuedAt.Format("20060102"),
			strings.ToUpper(hex.EncodeToString(id[:4])),
		)

		_, err := uc.quotes.FindByNumber(ctx, number)
		switch {
		case errors.Is(err, port.ErrQuoteNotFound):
			return number, nil
		case err != nil:
			return "", fmt.Errorf("probe quote number: %w", err)
		}
		// Collision: regenerate.
	}
	return "", fmt.Errorf("exhausted %d quote number attempts", maxNumberAttempts)
}

// toQuoteRequest validates the caller-facing DTO into the engine's input.
// This is the boundary where malformed enumerations are rejected; the core
// services assume well-typed input beyond defensive clamping.
func toQuoteRequest(req dto.CreateQuoteRequest) (valueobject.QuoteRequest, error) {
	productType, err := valueobject.NewProductType(req.ProductType)
	if err != nil {
		return valueobject.QuoteRequest{}, fmt.Errorf("invalid product type: %w", err)
	}
	businessType, err := valueobject.NewBusinessType(req.BusinessType)
	if err != nil {
		return valueobject.QuoteRequest{}, fmt.Errorf("invalid business type: %w", err)
	}
	if req.TaxID == "" {
		return valueobject.QuoteRequest{}, fmt.Errorf("tax ID is required")
	}
	if req.AnnualPayroll.IsNegative() || req.AnnualRevenue.IsNegative() {
		return valueobject.QuoteRequest{}, fmt.Errorf("payroll and revenue must not be negative")
	}
	if req.CoverageLimit.IsNegative() || req.Deductible.IsNegative() {
		return valueobject.QuoteRequest{}, fmt.Errorf("coverage limit and deductible must not be negative")
	}

	factors := make([]valueobject.RiskFactor, 0, len(req.RiskFactors))
	for _, f := range req.RiskFactors {
		ft, err := valueobject.NewRiskFactorType(f.Type)
		if err != nil {
			return valueobject.QuoteRequest{}, fmt.Errorf("invalid risk factor: %w", err)
		}
		factors = append(factors, valueobject.RiskFactor{Type: ft, Value: f.Value})
	}

	return valueobject.QuoteRequest{
		BusinessName:       req.BusinessName,
		TaxID:              req.TaxID,
		BusinessType:       businessType,
		ClassificationCode: req.ClassificationCode,
		ProductType:        productType,
		StateCode:          req.StateCode,
		AnnualPayroll:      req.AnnualPayroll,
		AnnualRevenue:      req.AnnualRevenue,
		EmployeeCount:      req.EmployeeCount,
		VehicleCount:       req.VehicleCount,
		RecordCount:        req.RecordCount,
		YearsInBusiness:    req.YearsInBusiness,
		CoverageLimit:      req.CoverageLimit,
		Deductible:         req.Deductible,
		RiskFactors:        factors,
		EffectiveDate:      req.EffectiveDate,
	}, nil
}

func toQuoteResponse(q model.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		QuoteNumber:      q.QuoteNumber(),
		Status:           q.StatusAt(time.Now().UTC()).String(),
		Request:          q.Request(),
		Rate:             q.Rate(),
		ResolutionLevel:  q.ResolutionLevel().String(),
		Assessment:       q.Assessment(),
		Premium:          q.Premium(),
		Eligibility:      q.Eligibility(),
		IssuedAt:         q.IssuedAt(),
		ExpiresAt:        q.ExpiresAt(),
		PolicyEffective:  q.PolicyEffective(),
		PolicyExpiration: q.PolicyExpiration(),
		ProcessingMillis: q.ProcessingTime().Milliseconds(),
	}
}
