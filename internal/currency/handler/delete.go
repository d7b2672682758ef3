package handler

import (
	"errors"
	"net/http"

	"currencyconverter/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Delete godoc
// @Summary Delete a currency
// @Description Deletes an existing currency
// @Tags Currencies
// @Param code path string true "Currency code to delete"
// @Success 204 "currency deleted"
// @Failure 404 "currency not found"
// @Failure 500 {object} errorResponse
// @Router /currencies/{code} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if _, err := h.service.GetByCode(r.Context(), code); err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		msg := "failed to delete currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	if err := h.service.Delete(r.Context(), code); err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			// the row vanished between the check and the delete
			w.WriteHeader(http.StatusNotFound)
			return
		}
		msg := "failed to delete currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Delete", "code": code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
