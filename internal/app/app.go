package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"currencyconverter/internal/adapters/cache"
	"currencyconverter/internal/adapters/httpclient"
	"currencyconverter/internal/adapters/postgres"
	"currencyconverter/internal/api"
	"currencyconverter/internal/config"
	"currencyconverter/internal/currency"
	currencyhandler "currencyconverter/internal/currency/handler"
	"currencyconverter/internal/metrics"
	"currencyconverter/internal/platform/db"
	httpserver "currencyconverter/internal/platform/http"
	"currencyconverter/internal/rate"
	ratehandler "currencyconverter/internal/rate/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const rateCacheMaxItems = 1024

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Schema migrations (also seeds the initial currency list)
	if err = db.Migrate(appCfg.DbServer); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External quote client
	quoteClient := httpclient.NewQuoteClient(
		baseHTTPClient,
		strings.TrimSuffix(appCfg.QuoteAPI.BaseURL, "/"),
	)

	// Repositories
	currencyRepo := postgres.NewCurrencyRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)

	// In-memory pair cache
	rateCache, err := cache.NewRateCache(rateCacheMaxItems)
	if err != nil {
		logrus.WithError(err).Error("Error creating rate cache")
		return err
	}
	defer rateCache.Close()

	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Services
	currencyService := currency.NewService(currencyRepo)
	rateService := rate.NewService(rateRepo, rateCache)
	syncer := rate.NewSyncer(
		rateRepo,
		quoteClient,
		rateCache,
		appMetrics,
		appCfg.Sync.BaseCurrencies,
		appCfg.Sync.QuoteCurrencies,
	)

	scheduler := rate.NewScheduler(syncer, time.Duration(appCfg.Scheduler.SyncIntervalSeconds)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	currencyHandler := currencyhandler.NewCurrencyHandler(currencyService)
	rateHandler := ratehandler.NewRateHandler(rateService, syncer)
	router := api.NewRouter(currencyHandler, rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
