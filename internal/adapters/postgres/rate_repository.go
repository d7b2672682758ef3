package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"currencyconverter/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

const rateColumns = `id, base_currency, quote_currency, rate, update_time`

func (r *RateRepository) ListAll(ctx context.Context) ([]domain.ExchangeRate, error) {
	q := `select ` + rateColumns + ` from exchange_rates;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()
	return scanRates(rows)
}

func (r *RateRepository) ListByBase(ctx context.Context, base string) ([]domain.ExchangeRate, error) {
	q := `select ` + rateColumns + ` from exchange_rates where base_currency = $1;`

	rows, err := r.pool.Query(ctx, q, base)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates for base %q: %w", base, err)
	}
	defer rows.Close()
	return scanRates(rows)
}

func (r *RateRepository) GetByPair(ctx context.Context, base string, quote string) (domain.ExchangeRate, error) {
	q := `select ` + rateColumns + ` from exchange_rates where base_currency = $1 and quote_currency = $2;`

	var rate domain.ExchangeRate
	if err := r.pool.QueryRow(ctx, q, base, quote).Scan(
		&rate.ID,
		&rate.BaseCurrency,
		&rate.QuoteCurrency,
		&rate.Rate,
		&rate.UpdateTime,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ExchangeRate{}, domain.ErrRateNotFound
		}
		return domain.ExchangeRate{}, fmt.Errorf("failed to select rate for pair %q/%q: %w", base, quote, err)
	}
	return rate, nil
}

// Upsert inserts a row for the pair or overwrites rate and update_time in
// place. The unique constraint on (base_currency, quote_currency) is the
// only race protection; concurrent writers resolve to last-write-wins.
func (r *RateRepository) Upsert(ctx context.Context, base string, quote string, rate float64, updateTime time.Time) (domain.ExchangeRate, error) {
	q := `
		insert into exchange_rates (base_currency, quote_currency, rate, update_time)
		values ($1, $2, $3, $4)
		on conflict (base_currency, quote_currency) do update
		set rate = excluded.rate, update_time = excluded.update_time
		returning ` + rateColumns + `;
	`

	var saved domain.ExchangeRate
	if err := r.pool.QueryRow(ctx, q, base, quote, rate, updateTime).Scan(
		&saved.ID,
		&saved.BaseCurrency,
		&saved.QuoteCurrency,
		&saved.Rate,
		&saved.UpdateTime,
	); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("failed to upsert rate for pair %q/%q: %w", base, quote, err)
	}
	return saved, nil
}

func scanRates(rows pgx.Rows) ([]domain.ExchangeRate, error) {
	rates := make([]domain.ExchangeRate, 0, 16)
	for rows.Next() {
		var rate domain.ExchangeRate
		if err := rows.Scan(
			&rate.ID,
			&rate.BaseCurrency,
			&rate.QuoteCurrency,
			&rate.Rate,
			&rate.UpdateTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rates: %w", err)
	}
	return rates, nil
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}
