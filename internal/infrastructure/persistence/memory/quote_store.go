package memory

import (
	"context"
	"sync"

	"github.com/fchchen/quote-engine/internal/domain/model"
	"github.com/fchchen/quote-engine/internal/domain/port"
)

// QuoteStore is an in-memory implementation of port.QuoteRepository.
// Writes are append-only and guarded by a mutex, so concurrent readers
// never observe a partially written quote.
type QuoteStore struct {
	mu       sync.RWMutex
	byNumber map[string]model.Quote
	byTaxID  map[string][]string // quote numbers, insertion order
}

// NewQuoteStore creates an empty quote store.
func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		byNumber: make(map[string]model.Quote),
		byTaxID:  make(map[string][]string),
	}
}

// Save appends the quote to the store and the business's history.
func (s *QuoteStore) Save(ctx context.Context, quote model.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	number := quote.QuoteNumber()
	if _, exists := s.byNumber[number]; !exists {
		taxID := quote.Request().TaxID
		s.byTaxID[taxID] = append(s.byTaxID[taxID], number)
	}
	s.byNumber[number] = quote
	return nil
}

// FindByNumber returns the stored quote or port.ErrQuoteNotFound.
func (s *QuoteStore) FindByNumber(ctx context.Context, quoteNumber string) (model.Quote, error) {
	if err := ctx.Err(); err != nil {
		return model.Quote{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.byNumber[quoteNumber]
	if !ok {
		return model.Quote{}, port.ErrQuoteNotFound
	}
	return quote, nil
}

// ListByTaxID returns the business's quote history, newest first.
func (s *QuoteStore) ListByTaxID(ctx context.Context, taxID string) ([]model.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	numbers := s.byTaxID[taxID]
	out := make([]model.Quote, 0, len(numbers))
	for i := len(numbers) - 1; i >= 0; i-- {
		out = append(out, s.byNumber[numbers[i]])
	}
	return out, nil
}
