package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SyncRunsTotal      prometheus.Counter
	SyncPairsTotal     *prometheus.CounterVec
	QuoteRequestsTotal *prometheus.CounterVec
}

// New registers the service counters on the given registerer. Production
// code passes prometheus.DefaultRegisterer; tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SyncRunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_sync_runs_total",
				Help: "Total number of rate synchronization runs",
			},
		),

		SyncPairsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_sync_pairs_total",
				Help: "Total number of per-pair sync outcomes",
			},
			[]string{"status"},
		),

		QuoteRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quote_api_requests_total",
				Help: "Total number of external quote API requests",
			},
			[]string{"outcome"},
		),
	}
}
