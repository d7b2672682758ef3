package rate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"currencyconverter/internal/adapters"
	"currencyconverter/internal/domain"
	"currencyconverter/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const perPairTimeout = 5 * time.Second

type PairStatus string

const (
	StatusCreated PairStatus = "created"
	StatusUpdated PairStatus = "updated"
	StatusSkipped PairStatus = "skipped"
	StatusFailed  PairStatus = "failed"
)

// PairResult is the outcome of synchronizing a single currency pair.
type PairResult struct {
	Pair   domain.RatePair `json:"pair"`
	Status PairStatus      `json:"status"`
	Rate   float64         `json:"rate,omitempty"`
	Reason string          `json:"reason,omitempty"`
}

// BatchReport aggregates per-pair results of one synchronization run.
type BatchReport struct {
	ExecID  string       `json:"exec_id"`
	Results []PairResult `json:"results"`
}

func (r BatchReport) Count(status PairStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Syncer maintains the exchange-rate store for a configured universe of
// currency pairs: the cross product of base and quote codes, minus
// identical pairs, in declared order.
type Syncer struct {
	rates      adapters.RateRepository
	quotes     adapters.QuoteClient
	cache      adapters.RateCache
	metrics    *metrics.Metrics
	baseCodes  []string
	quoteCodes []string
	// -----
	mu sync.Mutex
}

// Run synchronizes every pair in the universe and reports per-pair
// outcomes. A failing pair never aborts the rest of the batch. The mutex
// serializes the scheduled run against the manual API trigger so two runs
// don't race on the same rows.
func (s *Syncer) Run(ctx context.Context) BatchReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	execID := uuid.NewString()
	logrus.Infof("Starting exchange rate synchronization; execID: %s", execID)
	s.metrics.SyncRunsTotal.Inc()

	today := time.Now()
	firstDayOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	report := BatchReport{ExecID: execID, Results: make([]PairResult, 0, len(s.baseCodes)*len(s.quoteCodes))}
	touched := make([]domain.RatePair, 0, len(s.baseCodes)*len(s.quoteCodes))

	for _, base := range s.baseCodes {
		for _, quote := range s.quoteCodes {
			if base == quote {
				continue
			}
			res := s.syncPair(ctx, base, quote, firstDayOfMonth, today)
			s.metrics.SyncPairsTotal.WithLabelValues(string(res.Status)).Inc()

			switch res.Status {
			case StatusCreated, StatusUpdated:
				logrus.Infof("Got rate for %s: %v (%s); execID: %s", res.Pair, res.Rate, res.Status, execID)
				touched = append(touched, res.Pair)
			case StatusSkipped:
				logrus.Warnf("No data received for %s; execID: %s", res.Pair, execID)
			case StatusFailed:
				logrus.Errorf("Error updating exchange rate for %s: %s; execID: %s", res.Pair, res.Reason, execID)
			}
			report.Results = append(report.Results, res)
		}
	}

	if len(touched) > 0 {
		s.cache.CleanBatch(touched)
	}
	s.logCurrentRates(ctx, execID)
	return report
}

func (s *Syncer) syncPair(ctx context.Context, base string, quote string, start time.Time, end time.Time) PairResult {
	pair := domain.RatePair{Base: base, Quote: quote}

	reqCtx, cancel := context.WithTimeout(ctx, perPairTimeout)
	defer cancel()

	points, err := s.quotes.GetQuotes(reqCtx, base, quote, start, end)
	if err != nil {
		s.metrics.QuoteRequestsTotal.WithLabelValues("error").Inc()
		return PairResult{Pair: pair, Status: StatusFailed, Reason: err.Error()}
	}
	s.metrics.QuoteRequestsTotal.WithLabelValues("success").Inc()

	if len(points) == 0 {
		return PairResult{Pair: pair, Status: StatusSkipped, Reason: "no data"}
	}

	// The provider returns the series in chronological order, so the last
	// point is taken as most recent. close_time is not inspected; a
	// provider that reorders the series would break this.
	last := points[len(points)-1]

	averageBid, err := strconv.ParseFloat(last.AverageBid, 64)
	if err != nil {
		return PairResult{Pair: pair, Status: StatusFailed, Reason: fmt.Sprintf("parse average_bid %q: %v", last.AverageBid, err)}
	}
	averageAsk, err := strconv.ParseFloat(last.AverageAsk, 64)
	if err != nil {
		return PairResult{Pair: pair, Status: StatusFailed, Reason: fmt.Sprintf("parse average_ask %q: %v", last.AverageAsk, err)}
	}
	value := (averageBid + averageAsk) / 2

	status := StatusUpdated
	if _, getErr := s.rates.GetByPair(ctx, base, quote); getErr != nil {
		if !errors.Is(getErr, domain.ErrRateNotFound) {
			return PairResult{Pair: pair, Status: StatusFailed, Reason: getErr.Error()}
		}
		status = StatusCreated
	}

	if _, upsertErr := s.rates.Upsert(ctx, base, quote, value, time.Now()); upsertErr != nil {
		return PairResult{Pair: pair, Status: StatusFailed, Reason: upsertErr.Error()}
	}
	return PairResult{Pair: pair, Status: status, Rate: value}
}

func (s *Syncer) logCurrentRates(ctx context.Context, execID string) {
	all, err := s.rates.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Warnf("Failed to list rates after synchronization; execID: %s", execID)
		return
	}

	logrus.Infof("Exchange rate synchronization completed; execID: %s", execID)
	for _, rate := range all {
		logrus.Infof("Rate: %s to %s = %v (updated: %s)",
			rate.BaseCurrency, rate.QuoteCurrency, rate.Rate, rate.UpdateTime.Format(updateTimeLayout))
	}
	logrus.Infof("Total exchange rates in store: %d; execID: %s", len(all), execID)
}

func NewSyncer(
	rates adapters.RateRepository,
	quotes adapters.QuoteClient,
	cache adapters.RateCache,
	m *metrics.Metrics,
	baseCodes []string,
	quoteCodes []string,
) *Syncer {
	return &Syncer{
		rates:      rates,
		quotes:     quotes,
		cache:      cache,
		metrics:    m,
		baseCodes:  baseCodes,
		quoteCodes: quoteCodes,
	}
}
