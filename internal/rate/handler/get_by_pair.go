package handler

import (
	"errors"
	"net/http"
	"strings"

	"currencyconverter/internal/domain"
	"currencyconverter/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// GetByPair godoc
// @Summary Get specific exchange rate
// @Description Retrieves the exchange rate between two currencies
// @Tags Exchange Rates
// @Produce json
// @Param base path string true "Base currency code"
// @Param quote path string true "Quote currency code"
// @Success 200 {object} rate.View
// @Failure 404 "exchange rate not found"
// @Failure 500 {object} errorResponse
// @Router /exchange-rates/{base}/{quote} [get]
func (h *Handler) GetByPair(w http.ResponseWriter, r *http.Request) {
	base := strings.ToUpper(chi.URLParam(r, "base"))
	quote := strings.ToUpper(chi.URLParam(r, "quote"))

	found, err := h.service.GetByPair(r.Context(), base, quote)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		msg := "failed to get exchange rate"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByPair", "base": base, "quote": quote}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, rate.NewView(found))
}
