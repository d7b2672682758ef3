package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// GetAll godoc
// @Summary Get all exchange rates
// @Description Retrieves all exchange rates from the database
// @Tags Exchange Rates
// @Produce json
// @Success 200 {array} domain.ExchangeRate
// @Failure 500 {object} errorResponse
// @Router /exchange-rates [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	rates, err := h.service.ListAll(r.Context())
	if err != nil {
		msg := "failed to list exchange rates"
		logrus.WithError(err).WithField("handler", "GetAll").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}
