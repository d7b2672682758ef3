package handler

import (
	"errors"
	"net/http"

	"currencyconverter/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Get godoc
// @Summary Get currency by code
// @Description Retrieves a specific currency by its code
// @Tags Currencies
// @Produce json
// @Param code path string true "Currency code"
// @Success 200 {object} domain.Currency
// @Failure 404 "currency not found"
// @Failure 500 {object} errorResponse
// @Router /currencies/{code} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	currency, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		msg := "failed to get currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Get", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, currency)
}
