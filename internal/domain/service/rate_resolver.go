package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// RateResolver resolves a (state, classification, product) triple to a rate
// table entry through a hierarchical fallback chain. It never reports
// "not found": when every level misses it returns the synthetic sentinel
// entry so downstream components can short-circuit gracefully.
type RateResolver struct {
	rates port.RateLookup
}

// NewRateResolver creates a resolver backed by the given rate lookup.
func NewRateResolver(rates port.RateLookup) *RateResolver {
	return &RateResolver{rates: rates}
}

// Resolve walks the fallback chain, first match wins:
//
//  1. exact (state, classification, product)
//  2. (state, DEFAULT, product), the state-level default
//  3. (DEFAULT, DEFAULT, product), the global default
//
// State comparison is case-insensitive. An error is returned only for
// infrastructure failures (including context cancellation); a fully missed
// lookup yields the sentinel entry with ResolutionNone.
func (r *RateResolver) Resolve(
	ctx context.Context,
	stateCode, classificationCode string,
	productType valueobject.ProductType,
) (valueobject.RateTableEntry, valueobject.ResolutionLevel, error) {
	state := strings.ToUpper(strings.TrimSpace(stateCode))

	steps := []struct {
		state, classification string
		level                 valueobject.ResolutionLevel
	}{
		{state, classificationCode, valueobject.ResolutionExact},
		{state, valueobject.DefaultKey, valueobject.ResolutionStateDefault},
		{valueobject.DefaultKey, valueobject.DefaultKey, valueobject.ResolutionGlobalDefault},
	}

	for _, step := range steps {
		entry, err := r.rates.Find(ctx, step.state, step.classification, productType)
		if err == nil {
			return entry, step.level, nil
		}
		if !errors.Is(err, port.ErrRateNotFound) {
			return valueobject.RateTableEntry{}, valueobject.ResolutionNone,
				fmt.Errorf("rate lookup (%s/%s/%s): %w", step.state, step.classification, productType, err)
		}
	}

	// A correctly seeded table always carries the global default; be
	// defensive about a missing one rather than raising.
	return valueobject.SyntheticRateEntry(productType), valueobject.ResolutionNone, nil
}
