package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"currencyconverter/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Update godoc
// @Summary Update a currency
// @Description Updates an existing currency; the code in the body is overridden by the path
// @Tags Currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency code to update"
// @Param currency body domain.Currency true "Updated currency details"
// @Success 200 {object} domain.Currency
// @Failure 400 {object} errorResponse
// @Failure 404 "currency not found"
// @Failure 500 {object} errorResponse
// @Router /currencies/{code} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req domain.Currency
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.GetByCode(r.Context(), code); err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		msg := "failed to update currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Update", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	// the path is authoritative for the code
	req.Code = code
	updated, err := h.service.Save(r.Context(), req)
	if err != nil {
		msg := "failed to update currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Update", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
