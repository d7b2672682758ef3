package handler

import (
	"net/http"

	"currencyconverter/internal/rate"

	"github.com/sirupsen/logrus"
)

// Sync godoc
// @Summary Synchronize exchange rates
// @Description Manually triggers the synchronization of exchange rates with the external quote API
// @Tags Exchange Rates
// @Success 200 "synchronization completed"
// @Router /exchange-rates/sync [post]
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	// The caller gets a bare acknowledgment regardless of per-pair
	// outcomes; the report lands in the logs and metrics.
	report := h.syncer.Run(r.Context())
	logrus.Infof("Manual sync %s finished: %d created, %d updated, %d skipped, %d failed",
		report.ExecID,
		report.Count(rate.StatusCreated),
		report.Count(rate.StatusUpdated),
		report.Count(rate.StatusSkipped),
		report.Count(rate.StatusFailed),
	)
	w.WriteHeader(http.StatusOK)
}
