package adapters

import (
	"context"
	"time"

	"currencyconverter/internal/domain"
)

type QuoteClient interface {
	GetQuotes(ctx context.Context, base string, quote string, start time.Time, end time.Time) ([]domain.RateQuote, error)
}

type CurrencyRepository interface {
	ListAll(ctx context.Context) ([]domain.Currency, error)
	GetByCode(ctx context.Context, code string) (domain.Currency, error)
	Save(ctx context.Context, currency domain.Currency) (domain.Currency, error)
	Delete(ctx context.Context, code string) error
}

type RateRepository interface {
	ListAll(ctx context.Context) ([]domain.ExchangeRate, error)
	ListByBase(ctx context.Context, base string) ([]domain.ExchangeRate, error)
	GetByPair(ctx context.Context, base string, quote string) (domain.ExchangeRate, error)
	Upsert(ctx context.Context, base string, quote string, rate float64, updateTime time.Time) (domain.ExchangeRate, error)
}

type RateCache interface {
	Get(pair domain.RatePair) (domain.ExchangeRate, bool)
	Set(pair domain.RatePair, rate domain.ExchangeRate)
	CleanBatch(pairs []domain.RatePair)
}
