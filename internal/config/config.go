package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Auth      AuthConfig
	Pricing   PricingConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds the shared-password gate settings.
type AuthConfig struct {
	// Password is the dashboard password. Login fails with a server error while it is empty.
	Password string
	// SessionKey is a base64 fernet key. An empty key makes the server generate
	// one at startup, which logs everybody out on restart.
	SessionKey   string
	SessionTTL   time.Duration
	CookieSecure bool
}

// PricingConfig holds the price-source settings.
type PricingConfig struct {
	CacheTTL              time.Duration
	MaxCallsPerMinute     int
	RequestTimeout        time.Duration
	DefaultExchangeSuffix string
	Currency              string
	YahooBaseURL          string
	CoinGeckoBaseURL      string
	// RefreshSchedule is a cron spec for warming the price cache. Empty disables the job.
	RefreshSchedule string
}

// DashboardConfig holds valuation and presentation settings.
type DashboardConfig struct {
	Location          *time.Location
	ChartDateFormat   string
	EnrichConcurrency int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/wealth_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Auth: AuthConfig{
			Password:   os.Getenv("DASHBOARD_PASSWORD"),
			SessionKey: os.Getenv("SESSION_KEY"),
		},
		Pricing: PricingConfig{
			DefaultExchangeSuffix: getEnv("PRICE_DEFAULT_EXCHANGE_SUFFIX", ".PA"),
			Currency:              strings.ToLower(getEnv("REPORTING_CURRENCY", "eur")),
			YahooBaseURL:          getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			CoinGeckoBaseURL:      getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
			RefreshSchedule:       getEnv("PRICE_REFRESH_SCHEDULE", "@every 5m"),
		},
		Dashboard: DashboardConfig{
			ChartDateFormat: getEnv("CHART_DATE_FORMAT", "02/01/2006"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	var err error
	if config.Auth.SessionTTL, err = getEnvDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if config.Auth.CookieSecure, err = getEnvBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	if config.Pricing.CacheTTL, err = getEnvDuration("PRICE_CACHE_TTL", 20*time.Second); err != nil {
		return nil, err
	}
	if config.Pricing.MaxCallsPerMinute, err = getEnvInt("PRICE_MAX_CALLS_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if config.Pricing.RequestTimeout, err = getEnvDuration("PRICE_REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if config.Dashboard.EnrichConcurrency, err = getEnvInt("ENRICH_CONCURRENCY", 8); err != nil {
		return nil, err
	}
	if config.Log.Pretty, err = getEnvBool("LOG_PRETTY", false); err != nil {
		return nil, err
	}

	tz := getEnv("DASHBOARD_TIMEZONE", "Europe/Paris")
	if config.Dashboard.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_TIMEZONE %q: %w", tz, err)
	}

	if config.Pricing.MaxCallsPerMinute <= 0 {
		return nil, fmt.Errorf("PRICE_MAX_CALLS_PER_MINUTE must be positive, got %d", config.Pricing.MaxCallsPerMinute)
	}
	if config.Dashboard.EnrichConcurrency <= 0 {
		return nil, fmt.Errorf("ENRICH_CONCURRENCY must be positive, got %d", config.Dashboard.EnrichConcurrency)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
