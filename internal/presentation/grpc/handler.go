package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/application/usecase"
	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// QuoteHandler exposes quoting operations over gRPC.
type QuoteHandler struct {
	UnimplementedQuoteServiceServer

	createQuote *usecase.CreateQuote
	estimate    *usecase.EstimatePremium
	getQuote    *usecase.GetQuote
	listQuotes  *usecase.ListQuotes
}

// NewQuoteHandler creates a new handler with all use-case dependencies.
func NewQuoteHandler(
	createQuote *usecase.CreateQuote,
	estimate *usecase.EstimatePremium,
	getQuote *usecase.GetQuote,
	listQuotes *usecase.ListQuotes,
) *QuoteHandler {
	return &QuoteHandler{
		createQuote: createQuote,
		estimate:    estimate,
		getQuote:    getQuote,
		listQuotes:  listQuotes,
	}
}

// CreateQuote runs the full quoting pipeline and stores the result.
func (h *QuoteHandler) CreateQuote(ctx context.Context, req *CreateQuoteRequest) (*CreateQuoteResponse, error) {
	in := dto.CreateQuoteRequest{
		BusinessName:       req.BusinessName,
		TaxID:              req.TaxID,
		BusinessType:       req.BusinessType,
		ClassificationCode: req.ClassificationCode,
		ProductType:        req.ProductType,
		StateCode:          req.StateCode,
		EmployeeCount:      req.EmployeeCount,
		VehicleCount:       req.VehicleCount,
		RecordCount:        req.RecordCount,
		YearsInBusiness:    req.YearsInBusiness,
	}

	var err error
	if in.AnnualPayroll, err = parseMoney("annual_payroll", req.AnnualPayroll); err != nil {
		return nil, err
	}
	if in.AnnualRevenue, err = parseMoney("annual_revenue", req.AnnualRevenue); err != nil {
		return nil, err
	}
	if in.CoverageLimit, err = parseMoney("coverage_limit", req.CoverageLimit); err != nil {
		return nil, err
	}
	if in.Deductible, err = parseMoney("deductible", req.Deductible); err != nil {
		return nil, err
	}
	if req.EffectiveDate != "" {
		in.EffectiveDate, err = time.Parse(time.RFC3339, req.EffectiveDate)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "effective_date must be RFC 3339: %v", err)
		}
	}
	for _, f := range req.RiskFactors {
		value, err := decimal.NewFromString(f.Value)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "risk factor %s: invalid value %q", f.Type, f.Value)
		}
		in.RiskFactors = append(in.RiskFactors, dto.RiskFactorInput{Type: f.Type, Value: value})
	}

	resp, err := h.createQuote.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CreateQuoteResponse{Quote: toWireQuote(resp)}, nil
}

// EstimatePremium returns the fast premium preview.
func (h *QuoteHandler) EstimatePremium(ctx context.Context, req *EstimatePremiumRequest) (*EstimatePremiumResponse, error) {
	in := dto.EstimatePremiumRequest{
		ClassificationCode: req.ClassificationCode,
		ProductType:        req.ProductType,
		StateCode:          req.StateCode,
		EmployeeCount:      req.EmployeeCount,
		VehicleCount:       req.VehicleCount,
		RecordCount:        req.RecordCount,
		YearsInBusiness:    req.YearsInBusiness,
	}

	var err error
	if in.AnnualPayroll, err = parseMoney("annual_payroll", req.AnnualPayroll); err != nil {
		return nil, err
	}
	if in.AnnualRevenue, err = parseMoney("annual_revenue", req.AnnualRevenue); err != nil {
		return nil, err
	}
	if in.CoverageLimit, err = parseMoney("coverage_limit", req.CoverageLimit); err != nil {
		return nil, err
	}

	resp, err := h.estimate.Execute(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &EstimatePremiumResponse{
		Premium:         toWirePremium(resp.Premium),
		RiskScore:       resp.RiskScore.String(),
		RiskTier:        resp.RiskTier,
		ResolutionLevel: resp.ResolutionLevel,
		Notes:           resp.Notes,
	}, nil
}

// GetQuote retrieves a stored quote.
func (h *QuoteHandler) GetQuote(ctx context.Context, req *GetQuoteRequest) (*GetQuoteResponse, error) {
	resp, err := h.getQuote.Execute(ctx, dto.GetQuoteRequest{QuoteNumber: req.QuoteNumber})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetQuoteResponse{Quote: toWireQuote(resp)}, nil
}

// ListQuotes retrieves a business's quote history.
func (h *QuoteHandler) ListQuotes(ctx context.Context, req *ListQuotesRequest) (*ListQuotesResponse, error) {
	resp, err := h.listQuotes.Execute(ctx, dto.ListQuotesRequest{TaxID: req.TaxID})
	if err != nil {
		return nil, toStatusError(err)
	}

	quotes := make([]*Quote, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		quotes = append(quotes, toWireQuote(q))
	}
	return &ListQuotesResponse{TaxID: resp.TaxID, Quotes: quotes}, nil
}

// parseMoney parses a decimal string field; empty means zero.
func parseMoney(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "%s: invalid decimal %q", field, raw)
	}
	return d, nil
}

// toStatusError maps application errors onto gRPC status codes. Validation
// failures surface during DTO conversion and read as InvalidArgument;
// missing quotes as NotFound; anything else is Internal.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, port.ErrQuoteNotFound):
		return status.Error(codes.NotFound, err.Error())
	case isValidationError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func isValidationError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"invalid", "required", "must not be negative"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func toWireQuote(q dto.QuoteResponse) *Quote {
	return &Quote{
		QuoteNumber:        q.QuoteNumber,
		Status:             q.Status,
		BusinessName:       q.Request.BusinessName,
		TaxID:              q.Request.TaxID,
		ProductType:        q.Request.ProductType.String(),
		StateCode:          q.Request.StateCode,
		ClassificationCode: q.Request.ClassificationCode,
		ResolutionLevel:    q.ResolutionLevel,
		RiskAssessment:     toWireAssessment(q.Assessment),
		Premium:            toWirePremium(q.Premium),
		Eligibility: &Eligibility{
			IsEligible: q.Eligibility.Eligible,
			Referred:   q.Eligibility.Referred,
			Messages:   q.Eligibility.Messages,
		},
		IssuedAt:         q.IssuedAt.Format(time.RFC3339),
		ExpiresAt:        q.ExpiresAt.Format(time.RFC3339),
		PolicyEffective:  q.PolicyEffective.Format(time.RFC3339),
		PolicyExpiration: q.PolicyExpiration.Format(time.RFC3339),
	}
}

func toWireAssessment(a valueobject.RiskAssessment) *RiskAssessment {
	out := &RiskAssessment{
		RiskScore: a.Score.String(),
		RiskTier:  a.Tier.String(),
		Notes:     a.Notes,
	}
	for _, fs := range a.FactorScores {
		out.FactorScores = append(out.FactorScores, FactorScore{
			Type:   fs.Type.String(),
			Score:  fs.Score.String(),
			Weight: fs.Weight.String(),
			Impact: fs.Impact,
		})
	}
	return out
}

func toWirePremium(p valueobject.PremiumBreakdown) *PremiumBreakdown {
	out := &PremiumBreakdown{
		BasePremium:      p.BasePremium.String(),
		TotalAdjustments: p.TotalAdjustments.String(),
		Subtotal:         p.Subtotal.String(),
		StateTax:         p.StateTax.String(),
		PolicyFee:        p.PolicyFee.String(),
		AnnualPremium:    p.AnnualPremium.String(),
		MonthlyPremium:   p.MonthlyPremium.String(),
		MinimumPremium:   p.MinimumPremium.String(),
	}
	for _, adj := range p.Adjustments {
		out.Adjustments = append(out.Adjustments, PremiumAdjustment{
			Code:        adj.Code,
			Description: adj.Description,
			Type:        adj.Type.String(),
			Factor:      adj.Factor.String(),
			Amount:      adj.Amount.String(),
		})
	}
	return out
}
