package port

import (
	"context"
	"errors"

	"github.com/fchchen/quote-engine/internal/domain/model"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
	"github.com/fchchen/quote-engine/pkg/events"
)

// ErrRateNotFound is returned by RateLookup when no active entry matches
// the requested key. Implementations must return it identically whether the
// backing store is in-memory or persistent.
var ErrRateNotFound = errors.New("rate table entry not found")

// ErrQuoteNotFound is returned by QuoteRepository when no quote matches.
var ErrQuoteNotFound = errors.New("quote not found")

// RateLookup reads active rate table entries from reference data. Lookups
// must honour context cancellation and abort promptly without partial state.
type RateLookup interface {
	Find(ctx context.Context, stateCode, classificationCode string, productType valueobject.ProductType) (valueobject.RateTableEntry, error)
}

// QuoteRepository stores computed quotes. Saves are append-only: a quote is
// never mutated, only superseded by a newer one.
type QuoteRepository interface {
	Save(ctx context.Context, quote model.Quote) error

	// FindByNumber retrieves a quote exactly as it was stored.
	FindByNumber(ctx context.Context, quoteNumber string) (model.Quote, error)

	// ListByTaxID returns the quote history for a business, newest first.
	ListByTaxID(ctx context.Context, taxID string) ([]model.Quote, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}
