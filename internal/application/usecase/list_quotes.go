package usecase

import (
	"context"
	"fmt"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/domain/port"
)

// ListQuotes returns a business's quote history, newest first.
type ListQuotes struct {
	quotes port.QuoteRepository
}

// NewListQuotes creates the use case.
func NewListQuotes(quotes port.QuoteRepository) *ListQuotes {
	return &ListQuotes{quotes: quotes}
}

// Execute fetches the history for a business tax ID.
func (uc *ListQuotes) Execute(ctx context.Context, req dto.ListQuotesRequest) (dto.QuoteHistoryResponse, error) {
	if req.TaxID == "" {
		return dto.QuoteHistoryResponse{}, fmt.Errorf("tax ID is required")
	}

	history, err := uc.quotes.ListByTaxID(ctx, req.TaxID)
	if err != nil {
		return dto.QuoteHistoryResponse{}, fmt.Errorf("list quotes for %s: %w", req.TaxID, err)
	}

	out := make([]dto.QuoteResponse, 0, len(history))
	for _, q := range history {
		out = append(out, toQuoteResponse(q))
	}

	return dto.QuoteHistoryResponse{
		TaxID:  req.TaxID,
		Quotes: out,
	}, nil
}
