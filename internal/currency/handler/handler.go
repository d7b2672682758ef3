package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"currencyconverter/internal/domain"
)

type CurrencyService interface {
	ListAll(ctx context.Context) ([]domain.Currency, error)
	GetByCode(ctx context.Context, code string) (domain.Currency, error)
	Save(ctx context.Context, currency domain.Currency) (domain.Currency, error)
	Delete(ctx context.Context, code string) error
}

type Handler struct {
	service CurrencyService
}

func NewCurrencyHandler(service CurrencyService) *Handler {
	return &Handler{service: service}
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
