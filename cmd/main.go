package main

import (
	"os"

	"currencyconverter/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Currency Converter API
// @version 1.0
// @description REST service for currency reference data and exchange rates with a scheduled quote sync.
// @BasePath /api
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("application stopped with error")
		os.Exit(1)
	}
}
