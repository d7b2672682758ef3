package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"currencyconverter/internal/domain"
	"currencyconverter/internal/rate"
)

type RateService interface {
	ListAll(ctx context.Context) ([]domain.ExchangeRate, error)
	ListByBase(ctx context.Context, base string) ([]domain.ExchangeRate, error)
	GetByPair(ctx context.Context, base string, quote string) (domain.ExchangeRate, error)
	AddTestData(ctx context.Context) error
}

type Synchronizer interface {
	Run(ctx context.Context) rate.BatchReport
}

type Handler struct {
	service RateService
	syncer  Synchronizer
}

func NewRateHandler(service RateService, syncer Synchronizer) *Handler {
	return &Handler{service: service, syncer: syncer}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}
