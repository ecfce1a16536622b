package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/service"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// --- Mock implementations ---

type lookupKey struct {
	State, Classification string
}

type mockRateLookup struct {
	entries map[lookupKey]valueobject.RateTableEntry
	calls   []lookupKey
	err     error
}

func (m *mockRateLookup) Find(_ context.Context, stateCode, classificationCode string, _ valueobject.ProductType) (valueobject.RateTableEntry, error) {
	key := lookupKey{State: stateCode, Classification: classificationCode}
	m.calls = append(m.calls, key)
	if m.err != nil {
		return valueobject.RateTableEntry{}, m.err
	}
	if entry, ok := m.entries[key]; ok {
		return entry, nil
	}
	return valueobject.RateTableEntry{}, port.ErrRateNotFound
}

func entryFor(t *testing.T, state, classification string) valueobject.RateTableEntry {
	t.Helper()
	now := time.Now().UTC()
	e, err := valueobject.NewRateTableEntry(
		state, classification, valueobject.ProductWorkersComp,
		decimal.NewFromFloat(2.50), decimal.NewFromInt(500), decimal.NewFromFloat(0.0328),
		now.AddDate(0, -1, 0), now.AddDate(1, 0, 0),
	)
	require.NoError(t, err)
	return e
}

// --- Tests ---

func TestRateResolver_ExactMatch(t *testing.T) {
	lookup := &mockRateLookup{entries: map[lookupKey]valueobject.RateTableEntry{
		{"CA", "8810"}:    entryFor(t, "CA", "8810"),
		{"CA", "DEFAULT"}: entryFor(t, "CA", "DEFAULT"),
	}}
	resolver := service.NewRateResolver(lookup)

	entry, level, err := resolver.Resolve(context.Background(), "CA", "8810", valueobject.ProductWorkersComp)

	require.NoError(t, err)
	assert.Equal(t, valueobject.ResolutionExact, level)
	assert.Equal(t, "8810", entry.ClassificationCode)
	assert.Len(t, lookup.calls, 1, "exact hit must not probe further levels")
}

func TestRateResolver_StateDefaultFallback(t *testing.T) {
	lookup := &mockRateLookup{entries: map[lookupKey]valueobject.RateTableEntry{
		{"CA", "DEFAULT"}:      entryFor(t, "CA", "DEFAULT"),
		{"DEFAULT", "DEFAULT"}: entryFor(t, "DEFAULT", "DEFAULT"),
	}}
	resolver := service.NewRateResolver(lookup)

	entry, level, err := resolver.Resolve(context.Background(), "CA", "9999", valueobject.ProductWorkersComp)

	require.NoError(t, err)
	assert.Equal(t, valueobject.ResolutionStateDefault, level)
	assert.Equal(t, "DEFAULT", entry.ClassificationCode)
	assert.Equal(t, "CA", entry.StateCode)
	assert.Equal(t, []lookupKey{{"CA", "9999"}, {"CA", "DEFAULT"}}, lookup.calls)
}

func TestRateResolver_GlobalDefaultFallback(t *testing.T) {
	lookup := &mockRateLookup{entries: map[lookupKey]valueobject.RateTableEntry{
		{"DEFAULT", "DEFAULT"}: entryFor(t, "DEFAULT", "DEFAULT"),
	}}
	resolver := service.NewRateResolver(lookup)

	entry, level, err := resolver.Resolve(context.Background(), "WY", "9999", valueobject.ProductWorkersComp)

	require.NoError(t, err)
	assert.Equal(t, valueobject.ResolutionGlobalDefault, level)
	assert.Equal(t, "DEFAULT", entry.StateCode)
	assert.Len(t, lookup.calls, 3)
}

func TestRateResolver_SyntheticWhenAllMiss(t *testing.T) {
	lookup := &mockRateLookup{entries: map[lookupKey]valueobject.RateTableEntry{}}
	resolver := service.NewRateResolver(lookup)

	entry, level, err := resolver.Resolve(context.Background(), "WY", "9999", valueobject.ProductCyberLiability)

	require.NoError(t, err, "a fully missed lookup is not an error")
	assert.Equal(t, valueobject.ResolutionNone, level)
	assert.True(t, entry.Synthetic)
	assert.True(t, entry.BaseRate.IsZero())
	assert.Equal(t, valueobject.ProductCyberLiability, entry.ProductType)
}

func TestRateResolver_StateCaseInsensitive(t *testing.T) {
	lookup := &mockRateLookup{entries: map[lookupKey]valueobject.RateTableEntry{
		{"CA", "8810"}: entryFor(t, "CA", "8810"),
	}}
	resolver := service.NewRateResolver(lookup)

	_, level, err := resolver.Resolve(context.Background(), "  ca ", "8810", valueobject.ProductWorkersComp)

	require.NoError(t, err)
	assert.Equal(t, valueobject.ResolutionExact, level)
}

func TestRateResolver_InfrastructureErrorPropagates(t *testing.T) {
	lookup := &mockRateLookup{err: fmt.Errorf("connection refused")}
	resolver := service.NewRateResolver(lookup)

	_, level, err := resolver.Resolve(context.Background(), "CA", "8810", valueobject.ProductWorkersComp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, valueobject.ResolutionNone, level)
	assert.Len(t, lookup.calls, 1, "infrastructure failure must not continue the chain")
}

func TestRateResolver_ContextCancelled(t *testing.T) {
	lookup := &mockRateLookup{err: context.Canceled}
	resolver := service.NewRateResolver(lookup)

	_, _, err := resolver.Resolve(context.Background(), "CA", "8810", valueobject.ProductWorkersComp)

	require.ErrorIs(t, err, context.Canceled)
}
