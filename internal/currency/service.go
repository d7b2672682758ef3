package currency

import (
	"context"

	"currencyconverter/internal/adapters"
	"currencyconverter/internal/domain"
)

type Service struct {
	repo adapters.CurrencyRepository
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Currency, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) GetByCode(ctx context.Context, code string) (domain.Currency, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) Save(ctx context.Context, currency domain.Currency) (domain.Currency, error) {
	return s.repo.Save(ctx, currency)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}

func NewService(repo adapters.CurrencyRepository) *Service {
	return &Service{repo: repo}
}
