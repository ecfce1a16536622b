package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

type rateKey struct {
	state          string
	classification string
	product        valueobject.ProductType
}

// RateTable is an in-memory implementation of port.RateLookup, populated
// once at startup and read concurrently afterwards.
type RateTable struct {
	mu      sync.RWMutex
	entries map[rateKey]valueobject.RateTableEntry
}

// NewRateTable creates an empty rate table.
func NewRateTable() *RateTable {
	return &RateTable{entries: make(map[rateKey]valueobject.RateTableEntry)}
}

// Seed loads entries into the table, replacing any existing entry for the
// same key. State and classification keys are stored uppercased.
func (t *RateTable) Seed(entries ...valueobject.RateTableEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range entries {
		t.entries[keyFor(e.StateCode, e.ClassificationCode, e.ProductType)] = e
	}
}

// Find returns the active entry for the exact key, or port.ErrRateNotFound.
func (t *RateTable) Find(
	ctx context.Context,
	stateCode, classificationCode string,
	productType valueobject.ProductType,
) (valueobject.RateTableEntry, error) {
	if err := ctx.Err(); err != nil {
		return valueobject.RateTableEntry{}, err
	}

	t.mu.RLock()
	entry, ok := t.entries[keyFor(stateCode, classificationCode, productType)]
	t.mu.RUnlock()

	if !ok || !entry.ActiveOn(time.Now().UTC()) {
		return valueobject.RateTableEntry{}, port.ErrRateNotFound
	}
	return entry, nil
}

func keyFor(state, classification string, product valueobject.ProductType) rateKey {
	return rateKey{
		state:          strings.ToUpper(state),
		classification: strings.ToUpper(classification),
		product:        product,
	}
}

// SeedDefaults loads a representative development rate table: a handful of
// exact state/classification rates plus state-level and global defaults
// for every product line, so the fallback chain always terminates.
func (t *RateTable) SeedDefaults() {
	now := time.Now().UTC()
	year := now.AddDate(1, 0, 0)

	mustEntry := func(state, class string, product valueobject.ProductType, rate, minPremium, tax string) valueobject.RateTableEntry {
		e, err := valueobject.NewRateTableEntry(
			state, class, product,
			decimal.RequireFromString(rate),
			decimal.RequireFromString(minPremium),
			decimal.RequireFromString(tax),
			now.AddDate(-1, 0, 0), year,
		)
		if err != nil {
			panic(err)
		}
		return e
	}

	var seed []valueobject.RateTableEntry

	// Exact rates.
	seed = append(seed,
		mustEntry("CA", "8810", valueobject.ProductWorkersComp, "2.50", "500", "0.0328"),
		mustEntry("CA", "5403", valueobject.ProductWorkersComp, "12.40", "750", "0.0328"),
		mustEntry("NY", "8810", valueobject.ProductWorkersComp, "3.10", "500", "0.0215"),
		mustEntry("TX", "91340", valueobject.ProductGeneralLiability, "1.85", "400", "0.0175"),
		mustEntry("CA", "91340", valueobject.ProductGeneralLiability, "2.05", "400", "0.0328"),
	)

	// State-level defaults for the big states, global default for all.
	for _, product := range valueobject.AllProductTypes() {
		seed = append(seed,
			mustEntry("CA", valueobject.DefaultKey, product, "3.00", "500", "0.0328"),
			mustEntry("NY", valueobject.DefaultKey, product, "3.25", "500", "0.0215"),
			mustEntry("TX", valueobject.DefaultKey, product, "2.75", "450", "0.0175"),
			mustEntry(valueobject.DefaultKey, valueobject.DefaultKey, product, "3.50", "500", "0.0200"),
		)
	}

	t.Seed(seed...)
}
