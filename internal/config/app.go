package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type QuoteAPI struct {
	BaseURL string `mapstructure:"base_url"`
}

type Scheduler struct {
	SyncIntervalSeconds int `mapstructure:"sync_interval_seconds"`
}

// Sync holds the configured sync universe: the cross product of base and
// quote codes, minus identical pairs, is synchronized on every run.
type Sync struct {
	BaseCurrencies  []string `mapstructure:"base_currencies"`
	QuoteCurrencies []string `mapstructure:"quote_currencies"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	QuoteAPI   QuoteAPI   `mapstructure:"quote_api"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Sync       Sync       `mapstructure:"sync"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional, env vars may come from the environment directly
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat("config.yaml"); statErr == nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("quote_api.base_url", "https://fxds-public-exchange-rates-api.oanda.com/cc-api/currencies")
	viper.SetDefault("scheduler.sync_interval_seconds", 86400)
	viper.SetDefault("sync.base_currencies", []string{"EUR", "USD", "JPY"})
	viper.SetDefault("sync.quote_currencies", []string{"USD", "EUR", "JPY", "GBP"})
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client / quote api env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = viper.BindEnv("quote_api.base_url", "QUOTE_API_BASE_URL")
	_ = viper.BindEnv("scheduler.sync_interval_seconds", "SYNC_INTERVAL_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
