package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// AddTestData godoc
// @Summary Add test data
// @Description Inserts fixed sample exchange rate rows for manual testing
// @Tags Exchange Rates
// @Success 200 "test data added"
// @Failure 500 {object} errorResponse
// @Router /exchange-rates/test-data [post]
func (h *Handler) AddTestData(w http.ResponseWriter, r *http.Request) {
	if err := h.service.AddTestData(r.Context()); err != nil {
		msg := "failed to add test data"
		logrus.WithError(err).WithField("handler", "AddTestData").Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	w.WriteHeader(http.StatusOK)
}
