package valueobject_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

func TestNewRateTableEntry_Validation(t *testing.T) {
	now := time.Now().UTC()
	valid := func() (string, string, valueobject.ProductType, decimal.Decimal, decimal.Decimal, decimal.Decimal, time.Time, time.Time) {
		return "CA", "8810", valueobject.ProductWorkersComp,
			decimal.NewFromFloat(2.50), decimal.NewFromInt(500), decimal.NewFromFloat(0.0328),
			now, now.AddDate(1, 0, 0)
	}

	t.Run("valid entry is active", func(t *testing.T) {
		entry, err := valueobject.NewRateTableEntry(valid())
		require.NoError(t, err)
		assert.True(t, entry.Active)
		assert.False(t, entry.Synthetic)
	})

	t.Run("rejects negative base rate", func(t *testing.T) {
		state, class, product, _, minPrem, tax, eff, exp := valid()
		_, err := valueobject.NewRateTableEntry(state, class, product, decimal.NewFromInt(-1), minPrem, tax, eff, exp)
		assert.Error(t, err)
	})

	t.Run("rejects tax rate above 1", func(t *testing.T) {
		state, class, product, rate, minPrem, _, eff, exp := valid()
		_, err := valueobject.NewRateTableEntry(state, class, product, rate, minPrem, decimal.NewFromInt(2), eff, exp)
		assert.Error(t, err)
	})

	t.Run("rejects expiration before effective", func(t *testing.T) {
		state, class, product, rate, minPrem, tax, eff, _ := valid()
		_, err := valueobject.NewRateTableEntry(state, class, product, rate, minPrem, tax, eff, eff.AddDate(0, 0, -1))
		assert.Error(t, err)
	})
}

func TestRateTableEntry_ActiveOn(t *testing.T) {
	now := time.Now().UTC()
	entry, err := valueobject.NewRateTableEntry(
		"CA", "8810", valueobject.ProductWorkersComp,
		decimal.NewFromFloat(2.50), decimal.NewFromInt(500), decimal.NewFromFloat(0.0328),
		now, now.AddDate(1, 0, 0),
	)
	require.NoError(t, err)

	assert.True(t, entry.ActiveOn(now))
	assert.True(t, entry.ActiveOn(now.AddDate(0, 6, 0)))
	assert.False(t, entry.ActiveOn(now.AddDate(0, 0, -1)), "before the effective date")
	assert.False(t, entry.ActiveOn(now.AddDate(1, 0, 0)), "on the expiration instant")

	inactive := entry
	inactive.Active = false
	assert.False(t, inactive.ActiveOn(now))

	openEnded := entry
	openEnded.ExpirationDate = time.Time{}
	assert.True(t, openEnded.ActiveOn(now.AddDate(10, 0, 0)), "open-ended entries never expire")
}

func TestSyntheticRateEntry(t *testing.T) {
	entry := valueobject.SyntheticRateEntry(valueobject.ProductCyberLiability)

	assert.True(t, entry.Synthetic)
	assert.False(t, entry.Active)
	assert.True(t, entry.BaseRate.IsZero())
	assert.Equal(t, valueobject.ProductCyberLiability, entry.ProductType)
}
