package postgres

import (
	"context"
	"errors"
	"fmt"

	"currencyconverter/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CurrencyRepository struct {
	pool *pgxpool.Pool
}

func (r *CurrencyRepository) ListAll(ctx context.Context) ([]domain.Currency, error) {
	const q = `select code, name from currencies order by code asc;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies := make([]domain.Currency, 0, 16)
	for rows.Next() {
		var c domain.Currency
		if err = rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}
	return currencies, nil
}

func (r *CurrencyRepository) GetByCode(ctx context.Context, code string) (domain.Currency, error) {
	const q = `select code, name from currencies where code = $1;`

	var c domain.Currency
	if err := r.pool.QueryRow(ctx, q, code).Scan(&c.Code, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Currency{}, domain.ErrCurrencyNotFound
		}
		return domain.Currency{}, fmt.Errorf("failed to select currency %q: %w", code, err)
	}
	return c, nil
}

// Save upserts by code: the code is the primary key, so a repeated save
// for the same code replaces the name in place.
func (r *CurrencyRepository) Save(ctx context.Context, currency domain.Currency) (domain.Currency, error) {
	const q = `
		insert into currencies (code, name) values ($1, $2)
		on conflict (code) do update set name = excluded.name
		returning code, name;
	`

	var saved domain.Currency
	if err := r.pool.QueryRow(ctx, q, currency.Code, currency.Name).Scan(&saved.Code, &saved.Name); err != nil {
		return domain.Currency{}, fmt.Errorf("failed to save currency %q: %w", currency.Code, err)
	}
	return saved, nil
}

func (r *CurrencyRepository) Delete(ctx context.Context, code string) error {
	const q = `delete from currencies where code = $1;`

	tag, err := r.pool.Exec(ctx, q, code)
	if err != nil {
		return fmt.Errorf("failed to delete currency %q: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCurrencyNotFound
	}
	return nil
}

func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}
