package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/application/usecase"
	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/service"
)

func newEstimatePremium(lookup port.RateLookup) *usecase.EstimatePremium {
	return usecase.NewEstimatePremium(
		service.NewRateResolver(lookup),
		service.NewRiskAssessor(),
		service.NewPremiumCalculator(),
	)
}

func estimateRequest() dto.EstimatePremiumRequest {
	return dto.EstimatePremiumRequest{
		ClassificationCode: "8810",
		ProductType:        "WORKERS_COMP",
		StateCode:          "CA",
		AnnualPayroll:      decimal.NewFromInt(300_000),
		AnnualRevenue:      decimal.NewFromInt(2_000_000),
		EmployeeCount:      12,
		YearsInBusiness:    3,
		CoverageLimit:      decimal.NewFromInt(1_000_000),
	}
}

func TestEstimatePremium_Execute(t *testing.T) {
	t.Run("previews with the neutral risk assessment", func(t *testing.T) {
		uc := newEstimatePremium(caWorkersCompLookup(t))

		resp, err := uc.Execute(context.Background(), estimateRequest())

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(resp.RiskScore), "estimates always use the neutral score")
		assert.Equal(t, "STANDARD", resp.RiskTier)
		assert.Equal(t, "EXACT", resp.ResolutionLevel)
		assert.True(t, decimal.RequireFromString("1024.60").Equal(resp.Premium.AnnualPremium),
			"annual premium was %s", resp.Premium.AnnualPremium)
	})

	t.Run("notes the missing rate instead of failing", func(t *testing.T) {
		uc := newEstimatePremium(&mockRateLookup{})

		resp, err := uc.Execute(context.Background(), estimateRequest())

		require.NoError(t, err)
		assert.Equal(t, "NONE", resp.ResolutionLevel)
		assert.True(t, resp.Premium.AnnualPremium.IsZero())
		require.NotEmpty(t, resp.Notes)
		assert.Contains(t, resp.Notes[len(resp.Notes)-1], "no applicable rate on file")
	})

	t.Run("rejects unknown product type", func(t *testing.T) {
		uc := newEstimatePremium(caWorkersCompLookup(t))

		req := estimateRequest()
		req.ProductType = "UMBRELLA"
		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid product type")
	})
}
