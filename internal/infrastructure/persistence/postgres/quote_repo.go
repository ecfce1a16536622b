package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fchchen/quote-engine/internal/domain/model"
	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/internal/domain/valueobject"
)

// QuoteRepo implements port.QuoteRepository backed by PostgreSQL. The
// engine outputs are stored as JSONB documents so a retrieved quote is
// exactly what was computed, never re-derived.
type QuoteRepo struct {
	pool *pgxpool.Pool
}

// NewQuoteRepo creates a new repository backed by PostgreSQL.
func NewQuoteRepo(pool *pgxpool.Pool) *QuoteRepo {
	return &QuoteRepo{pool: pool}
}

// Save appends a quote. Quote numbers are the primary key; history is
// append-only so conflicts are rejected rather than merged.
func (r *QuoteRepo) Save(ctx context.Context, quote model.Quote) error {
	request, err := json.Marshal(quote.Request())
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	rate, err := json.Marshal(quote.Rate())
	if err != nil {
		return fmt.Errorf("marshal rate: %w", err)
	}
	assessment, err := json.Marshal(quote.Assessment())
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	premium, err := json.Marshal(quote.Premium())
	if err != nil {
		return fmt.Errorf("marshal premium: %w", err)
	}
	eligibility, err := json.Marshal(quote.Eligibility())
	if err != nil {
		return fmt.Errorf("marshal eligibility: %w", err)
	}

	query := `
		INSERT INTO quotes (
			quote_number, tax_id, status, resolution_level,
			request, rate, assessment, premium, eligibility,
			issued_at, expires_at, policy_effective, policy_expiration,
			processing_millis
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`
	_, err = r.pool.Exec(ctx, query,
		quote.QuoteNumber(), quote.Request().TaxID,
		quote.Status().String(), quote.ResolutionLevel().String(),
		request, rate, assessment, premium, eligibility,
		quote.IssuedAt(), quote.ExpiresAt(),
		quote.PolicyEffective(), quote.PolicyExpiration(),
		quote.ProcessingTime().Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save quote: %w", err)
	}
	return nil
}

// FindByNumber retrieves a single quote.
func (r *QuoteRepo) FindByNumber(ctx context.Context, quoteNumber string) (model.Quote, error) {
	query := selectQuote + ` WHERE quote_number = $1`
	quote, err := scanQuote(r.pool.QueryRow(ctx, query, quoteNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Quote{}, port.ErrQuoteNotFound
	}
	return quote, err
}

// ListByTaxID retrieves a business's quote history, newest first.
func (r *QuoteRepo) ListByTaxID(ctx context.Context, taxID string) ([]model.Quote, error) {
	query := selectQuote + ` WHERE tax_id = $1 ORDER BY issued_at DESC`
	rows, err := r.pool.Query(ctx, query, taxID)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	var out []model.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, quote)
	}
	return out, rows.Err()
}

const selectQuote = `
	SELECT quote_number, status, resolution_level,
	       request, rate, assessment, premium, eligibility,
	       issued_at, expires_at, policy_effective, policy_expiration,
	       processing_millis
	FROM quotes
`

type scannable interface {
	Scan(dest ...any) error
}

func scanQuote(s scannable) (model.Quote, error) {
	var (
		number, statusStr, levelStr                        string
		requestJSON, rateJSON                              []byte
		assessmentJSON, premiumJSON, eligibilityJSON       []byte
		issuedAt, expiresAt, policyEffective, policyExpiry time.Time
		processingMillis                                   int64
	)

	err := s.Scan(
		&number, &statusStr, &levelStr,
		&requestJSON, &rateJSON,
		&assessmentJSON, &premiumJSON, &eligibilityJSON,
		&issuedAt, &expiresAt, &policyEffective, &policyExpiry,
		&processingMillis,
	)
	if err != nil {
		return model.Quote{}, err
	}

	status, err := valueobject.NewQuoteStatus(statusStr)
	if err != nil {
		return model.Quote{}, fmt.Errorf("parse status: %w", err)
	}

	var (
		request     valueobject.QuoteRequest
		rate        valueobject.RateTableEntry
		assessment  valueobject.RiskAssessment
		premium     valueobject.PremiumBreakdown
		eligibility valueobject.EligibilityResult
	)
	for _, field := range []struct {
		data []byte
		into any
		name string
	}{
		{requestJSON, &request, "request"},
		{rateJSON, &rate, "rate"},
		{assessmentJSON, &assessment, "assessment"},
		{premiumJSON, &premium, "premium"},
		{eligibilityJSON, &eligibility, "eligibility"},
	} {
		if err := json.Unmarshal(field.data, field.into); err != nil {
			return model.Quote{}, fmt.Errorf("unmarshal %s: %w", field.name, err)
		}
	}

	return model.ReconstructQuote(
		number, status, request, rate,
		valueobject.ResolutionLevel(levelStr),
		assessment, premium, eligibility,
		issuedAt, expiresAt, policyEffective, policyExpiry,
		time.Duration(processingMillis)*time.Millisecond,
	), nil
}
