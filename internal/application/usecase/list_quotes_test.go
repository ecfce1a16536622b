package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/application/usecase"
	"github.com/fchchen/quote-engine/internal/infrastructure/persistence/memory"
)

func TestListQuotes_Execute(t *testing.T) {
	t.Run("returns the business history newest first", func(t *testing.T) {
		store := memory.NewQuoteStore()
		create := newCreateQuote(caWorkersCompLookup(t), store, &mockPublisher{})

		first, err := create.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		second, err := create.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		uc := usecase.NewListQuotes(store)
		resp, err := uc.Execute(context.Background(), dto.ListQuotesRequest{TaxID: "95-1234567"})

		require.NoError(t, err)
		assert.Equal(t, "95-1234567", resp.TaxID)
		require.Len(t, resp.Quotes, 2)
		assert.Equal(t, second.QuoteNumber, resp.Quotes[0].QuoteNumber)
		assert.Equal(t, first.QuoteNumber, resp.Quotes[1].QuoteNumber)
	})

	t.Run("unknown business has an empty history", func(t *testing.T) {
		uc := usecase.NewListQuotes(memory.NewQuoteStore())

		resp, err := uc.Execute(context.Background(), dto.ListQuotesRequest{TaxID: "00-0000000"})

		require.NoError(t, err)
		assert.Empty(t, resp.Quotes)
	})

	t.Run("empty tax ID is rejected", func(t *testing.T) {
		uc := usecase.NewListQuotes(memory.NewQuoteStore())

		_, err := uc.Execute(context.Background(), dto.ListQuotesRequest{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tax ID is required")
	})
}
