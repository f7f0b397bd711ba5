package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Database    DatabaseConfig
	Quotes      QuotesConfig
	RateLimit   RateLimitConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	// ConnectionString is a postgres:// URL in production or a SQLite
	// file path for local development
	ConnectionString string
	// CACertPath is the trust anchor (PEM) for the Postgres TLS transport
	CACertPath      string
	MigrationsPath  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// QuotesConfig holds quote-listing configuration
type QuotesConfig struct {
	// ListLimit caps the rows returned by the list operation
	ListLimit int
}

// RateLimitConfig holds request rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DATABASE_URL", "./data/quotes.db")
	viper.SetDefault("DB_CA_CERT_PATH", "")
	viper.SetDefault("DB_MIGRATIONS_PATH", "./migrations/sqlite")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 4)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 2)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("QUOTES_LIST_LIMIT", 20)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Database: DatabaseConfig{
			ConnectionString: viper.GetString("DATABASE_URL"),
			CACertPath:       viper.GetString("DB_CA_CERT_PATH"),
			MigrationsPath:   viper.GetString("DB_MIGRATIONS_PATH"),
			MaxOpenConns:     viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:     viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime:  viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:      viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Quotes: QuotesConfig{
			ListLimit: viper.GetInt("QUOTES_LIST_LIMIT"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
