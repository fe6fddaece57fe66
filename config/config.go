package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=b3charts
//	FEED_PROVIDER=backend
//	FEED_BASE_URL=http://localhost:8000
//	CHART_SOURCE=feed
//	RENKO_BRICK_SIZE=2
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Feed     FeedConfig     // external market data
	Chart    ChartConfig    // series source, cache and aggregator defaults
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // upper bound of a REST request
	RateLimit      int           // requests per client per minute
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// FeedConfig selects and configures the market data source.
type FeedConfig struct {
	Provider string        // "backend" or "yahoo"
	BaseURL  string        // backend root URL, required for the backend provider
	Timeout  time.Duration // per-request timeout
}

// ChartConfig configures how series are obtained and the default aggregator parameters.
type ChartConfig struct {
	Source   string        // "feed" or "store"
	CacheTTL time.Duration // how long a fetched series is reused

	BrickSize    decimal.Decimal
	Reversal     decimal.Decimal
	BoxSize      decimal.Decimal
	ReversalSize decimal.Decimal
	RangeSize    decimal.Decimal
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Feed providers.
const (
	ProviderBackend = "backend"
	ProviderYahoo   = "yahoo"
)

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig from the environment.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present), loaded with godotenv.
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or malformed, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	// .env never overrides variables that are already set
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg, invalid := build(v)
	AppConfig = cfg

	if len(invalid) > 0 {
		log.Fatalf("invalid configuration values: %v\n", invalid)
	}
	validateConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT", 60)

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "b3charts")
	v.SetDefault("POSTGRES_SSLMODE", "disable")

	v.SetDefault("FEED_PROVIDER", ProviderBackend)
	v.SetDefault("FEED_BASE_URL", "http://localhost:8000")
	v.SetDefault("FEED_TIMEOUT", "15s")

	v.SetDefault("CHART_SOURCE", "feed")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("RENKO_BRICK_SIZE", "2")
	v.SetDefault("KAGI_REVERSAL", "3")
	v.SetDefault("PF_BOX_SIZE", "1")
	v.SetDefault("PF_REVERSAL_SIZE", "3")
	v.SetDefault("RANGE_SIZE", "2")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

// build reads every key from v. Values that cannot be parsed are reported by name.
func build(v *viper.Viper) (Config, []string) {
	var invalid []string

	dur := func(key string) time.Duration {
		d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
		}
		return d
	}
	dec := func(key string) decimal.Decimal {
		d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
		if err != nil || !d.IsPositive() {
			invalid = append(invalid, key)
		}
		return d
	}

	cfg := Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			RequestTimeout: dur("REQUEST_TIMEOUT"),
			RateLimit:      v.GetInt("RATE_LIMIT"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetInt("POSTGRES_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			DBName:   v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
		},
		Feed: FeedConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("FEED_PROVIDER"))),
			BaseURL:  strings.TrimRight(v.GetString("FEED_BASE_URL"), "/"),
			Timeout:  dur("FEED_TIMEOUT"),
		},
		Chart: ChartConfig{
			Source:       strings.ToLower(strings.TrimSpace(v.GetString("CHART_SOURCE"))),
			CacheTTL:     dur("CACHE_TTL"),
			BrickSize:    dec("RENKO_BRICK_SIZE"),
			Reversal:     dec("KAGI_REVERSAL"),
			BoxSize:      dec("PF_BOX_SIZE"),
			ReversalSize: dec("PF_REVERSAL_SIZE"),
			RangeSize:    dec("RANGE_SIZE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}

	switch cfg.Feed.Provider {
	case ProviderBackend, ProviderYahoo:
	default:
		invalid = append(invalid, "FEED_PROVIDER")
	}
	switch cfg.Chart.Source {
	case "feed", "store":
	default:
		invalid = append(invalid, "CHART_SOURCE")
	}

	cfg.Postgres.URL = cfg.Postgres.DSN()
	return cfg, invalid
}

// DSN returns the database/sql connection string for p.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	if missing := missingKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

func missingKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if cfg.Feed.Provider == ProviderBackend && cfg.Feed.BaseURL == "" {
		missing = append(missing, "FEED_BASE_URL")
	}
	return missing
}
