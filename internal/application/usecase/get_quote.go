package usecase

import (
	"context"
	"fmt"

	"github.com/fchchen/quote-engine/internal/application/dto"
	"github.com/fchchen/quote-engine/internal/domain/port"
)

// GetQuote retrieves a stored quote by its number, exactly as persisted.
// Nothing is recomputed on the read path.
type GetQuote struct {
	quotes port.QuoteRepository
}

// NewGetQuote creates the use case.
func NewGetQuote(quotes port.QuoteRepository) *GetQuote {
	return &GetQuote{quotes: quotes}
}

// Execute fetches the quote.
func (uc *GetQuote) Execute(ctx context.Context, req dto.GetQuoteRequest) (dto.QuoteResponse, error) {
	if req.QuoteNumber == "" {
		return dto.QuoteResponse{}, fmt.Errorf("quote number is required")
	}

	quote, err := uc.quotes.FindByNumber(ctx, req.QuoteNumber)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("find quote %s: %w", req.QuoteNumber, err)
	}

	return toQuoteResponse(quote), nil
}
