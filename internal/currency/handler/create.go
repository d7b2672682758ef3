package handler

import (
	"encoding/json"
	"net/http"

	"currencyconverter/internal/domain"

	"github.com/sirupsen/logrus"
)

// Create godoc
// @Summary Create a new currency
// @Description Creates a new currency entry (or replaces an existing one with the same code)
// @Tags Currencies
// @Accept json
// @Produce json
// @Param currency body domain.Currency true "Currency details"
// @Success 201 {object} domain.Currency
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /currencies [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.Currency
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.Save(r.Context(), req)
	if err != nil {
		msg := "failed to create currency"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Create", "code": req.Code}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
