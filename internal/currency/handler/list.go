package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// List godoc
// @Summary Get all currencies
// @Description Retrieves a list of all available currencies sorted by code
// @Tags Currencies
// @Produce json
// @Success 200 {array} domain.Currency
// @Failure 500 {object} errorResponse
// @Router /currencies [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.service.ListAll(r.Context())
	if err != nil {
		msg := "failed to list currencies"
		logrus.WithError(err).WithField("handler", "List").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, currencies)
}
