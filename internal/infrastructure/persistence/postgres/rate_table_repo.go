package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// RateTableRepo implements port.RateLookup backed by PostgreSQL.
type RateTableRepo struct {
	pool *pgxpool.Pool
}

// NewRateTableRepo creates a new repository backed by PostgreSQL.
func NewRateTableRepo(pool *pgxpool.Pool) *RateTableRepo {
	return &RateTableRepo{pool: pool}
}

// Find returns the newest active entry for the exact key, or
// port.ErrRateNotFound. The miss is indistinguishable from the in-memory
// implementation's.
func (r *RateTableRepo) Find(
	ctx context.Context,
	stateCode, classificationCode string,
	productType valueobject.ProductType,
) (valueobject.RateTableEntry, error) {
	query := `
		SELECT state_code, classification_code, product_type,
		       base_rate, minimum_premium, state_tax_rate,
		       active, effective_date, expiration_date
		FROM rate_table
		WHERE state_code = $1
		  AND classification_code = $2
		  AND product_type = $3
		  AND active
		  AND effective_date <= now()
		  AND expiration_date > now()
		ORDER BY effective_date DESC
		LIMIT 1
	`
	row := r.pool.QueryRow(ctx, query,
		strings.ToUpper(stateCode),
		strings.ToUpper(classificationCode),
		productType.String(),
	)

	var (
		state, classification, product string
		baseRate, minPremium, taxRate  decimal.Decimal
		active                         bool
		effective, expiration          time.Time
	)
	err := row.Scan(
		&state, &classification, &product,
		&baseRate, &minPremium, &taxRate,
		&active, &effective, &expiration,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return valueobject.RateTableEntry{}, port.ErrRateNotFound
	}
	if err != nil {
		return valueobject.RateTableEntry{}, fmt.Errorf("scan rate entry: %w", err)
	}

	productType, err = valueobject.NewProductType(product)
	if err != nil {
		return valueobject.RateTableEntry{}, fmt.Errorf("parse product type: %w", err)
	}

	return valueobject.RateTableEntry{
		StateCode:          state,
		ClassificationCode: classification,
		ProductType:        productType,
		BaseRate:           baseRate,
		MinimumPremium:     minPremium,
		StateTaxRate:       taxRate,
		Active:             active,
		EffectiveDate:      effective,
		ExpirationDate:     expiration,
	}, nil
}
