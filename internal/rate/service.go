package rate

import (
	"context"
	"time"

	"currencyconverter/internal/adapters"
	"currencyconverter/internal/domain"

	"github.com/sirupsen/logrus"
)

type Service struct {
	repo  adapters.RateRepository
	cache adapters.RateCache
}

func (s *Service) ListAll(ctx context.Context) ([]domain.ExchangeRate, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByBase(ctx context.Context, base string) ([]domain.ExchangeRate, error) {
	return s.repo.ListByBase(ctx, base)
}

func (s *Service) GetByPair(ctx context.Context, base string, quote string) (domain.ExchangeRate, error) {
	pair := domain.RatePair{Base: base, Quote: quote}
	if cached, ok := s.cache.Get(pair); ok {
		return cached, nil
	}

	rate, err := s.repo.GetByPair(ctx, base, quote)
	if err != nil {
		return domain.ExchangeRate{}, err
	}
	s.cache.Set(pair, rate)
	return rate, nil
}

// AddTestData upserts a fixed set of sample rows for manual testing.
// Repeated calls overwrite the same rows instead of accumulating
// duplicates, keeping the one-row-per-pair invariant.
func (s *Service) AddTestData(ctx context.Context) error {
	logrus.Info("Adding test exchange rate data")

	samples := []domain.ExchangeRate{
		{BaseCurrency: "USD", QuoteCurrency: "EUR", Rate: 0.85},
		{BaseCurrency: "EUR", QuoteCurrency: "USD", Rate: 1.18},
		{BaseCurrency: "USD", QuoteCurrency: "JPY", Rate: 110.5},
	}

	now := time.Now()
	touched := make([]domain.RatePair, 0, len(samples))
	for _, sample := range samples {
		saved, err := s.repo.Upsert(ctx, sample.BaseCurrency, sample.QuoteCurrency, sample.Rate, now)
		if err != nil {
			return err
		}
		logrus.Infof("Saved test rate: %s to %s = %v (ID: %d)",
			saved.BaseCurrency, saved.QuoteCurrency, saved.Rate, saved.ID)
		touched = append(touched, domain.RatePair{Base: sample.BaseCurrency, Quote: sample.QuoteCurrency})
	}
	s.cache.CleanBatch(touched)
	return nil
}

func NewService(repo adapters.RateRepository, cache adapters.RateCache) *Service {
	return &Service{repo: repo, cache: cache}
}
