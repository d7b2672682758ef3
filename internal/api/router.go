package api

import (
	_ "currencyconverter/docs"
	currencyhandler "currencyconverter/internal/currency/handler"
	ratehandler "currencyconverter/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(currencyHandler *currencyhandler.Handler, rateHandler *ratehandler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(requestLogger)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	// Prometheus metrics
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/currencies", currencyHandler.List)
		r.Post("/currencies", currencyHandler.Create)
		r.Get("/currencies/{code}", currencyHandler.Get)
		r.Put("/currencies/{code}", currencyHandler.Update)
		r.Delete("/currencies/{code}", currencyHandler.Delete)

		r.Get("/exchange-rates", rateHandler.GetAll)
		r.Post("/exchange-rates/sync", rateHandler.Sync)
		r.Post("/exchange-rates/test-data", rateHandler.AddTestData)
		r.Get("/exchange-rates/{base}", rateHandler.GetByBase)
		r.Get("/exchange-rates/{base}/{quote}", rateHandler.GetByPair)
	})
	return router
}
