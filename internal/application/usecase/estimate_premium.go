package usecase

import (
	"context"
	"fmt"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/domain/service"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// EstimatePremium is the fast, no-persistence premium preview. It uses the
// neutral risk assessment and skips eligibility evaluation entirely.
type EstimatePremium struct {
	resolver   *service.RateResolver
	assessor   *service.RiskAssessor
	calculator *service.PremiumCalculator
}

// NewEstimatePremium creates the use case.
func NewEstimatePremium(
	resolver *service.RateResolver,
	assessor *service.RiskAssessor,
	calculator *service.PremiumCalculator,
) *EstimatePremium {
	return &EstimatePremium{
		resolver:   resolver,
		assessor:   assessor,
		calculator: calculator,
	}
}

// Execute computes the premium preview.
func (uc *EstimatePremium) Execute(ctx context.Context, req dto.EstimatePremiumRequest) (dto.PremiumEstimateResponse, error) {
	productType, err := valueobject.NewProductType(req.ProductType)
	if err != nil {
		return dto.PremiumEstimateResponse{}, fmt.Errorf("invalid product type: %w", err)
	}
	if req.AnnualPayroll.IsNegative() || req.AnnualRevenue.IsNegative() {
		return dto.PremiumEstimateResponse{}, fmt.Errorf("payroll and revenue must not be negative")
	}

	request := valueobject.QuoteRequest{
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
	}.Normalized()

	rate, level, err := uc.resolver.Resolve(ctx, request.StateCode, request.ClassificationCode, request.ProductType)
	if err != nil {
		return dto.PremiumEstimateResponse{}, fmt.Errorf("resolve rate: %w", err)
	}

	assessment := uc.assessor.Assess(nil)
	premium := uc.calculator.Calculate(request, assessment, rate)

	notes := append([]string(nil), assessment.Notes...)
	if rate.Synthetic {
		notes = append(notes, fmt.Sprintf("no applicable rate on file for %s/%s/%s",
			request.StateCode, request.ClassificationCode, request.ProductType))
	}

	return dto.PremiumEstimateResponse{
		Premium:         premium,
		RiskScore:       assessment.Score,
		RiskTier:        assessment.Tier.String(),
		ResolutionLevel: level.String(),
		Notes:           notes,
	}, nil
}
