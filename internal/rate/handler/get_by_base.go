package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// GetByBase godoc
// @Summary Get exchange rates by base currency
// @Description Retrieves all exchange rates for a specific base currency
// @Tags Exchange Rates
// @Produce json
// @Param base path string true "Base currency code"
// @Success 200 {array} domain.ExchangeRate
// @Failure 404 "no rates for the base currency"
// @Failure 500 {object} errorResponse
// @Router /exchange-rates/{base} [get]
func (h *Handler) GetByBase(w http.ResponseWriter, r *http.Request) {
	base := chi.URLParam(r, "base")

	rates, err := h.service.ListByBase(r.Context(), base)
	if err != nil {
		msg := "failed to list exchange rates by base currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByBase", "base": base}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	if len(rates) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}
