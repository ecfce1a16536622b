package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

func TestQuoteRequest_Normalized(t *testing.T) {
	request := valueobject.QuoteRequest{
		StateCode:     " ca ",
		EmployeeCount: 0,
	}

	normalized := request.Normalized()

	assert.Equal(t, "CA", normalized.StateCode)
	assert.Equal(t, 1, normalized.EmployeeCount, "employee count floors at 1")
	assert.Equal(t, " ca ", request.StateCode, "the original request is untouched")
}

func TestQuoteRequest_ExposureUnits(t *testing.T) {
	request := valueobject.QuoteRequest{
		AnnualPayroll: decimal.NewFromInt(300_000),
		AnnualRevenue: decimal.NewFromInt(5_000_000),
		VehicleCount:  14,
		RecordCount:   250_000,
	}

	cases := []struct {
		product valueobject.ProductType
		want    string
	}{
		{valueobject.ProductWorkersComp, "300"},          // payroll / 1000
		{valueobject.ProductGeneralLiability, "5000"},    // revenue / 1000
		{valueobject.ProductCommercialProperty, "5000"},  // revenue / 1000
		{valueobject.ProductProfessionalLiability, "5000"},
		{valueobject.ProductCommercialAuto, "14"},        // per vehicle
		{valueobject.ProductCyberLiability, "250"},       // records / 1000
	}

	for _, tc := range cases {
		t.Run(tc.product.String(), func(t *testing.T) {
			request.ProductType = tc.product
			units := request.ExposureUnits()
			assert.True(t, decimal.RequireFromString(tc.want).Equal(units),
				"want %s units, got %s", tc.want, units)
		})
	}
}
