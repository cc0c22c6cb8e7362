package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Database    DatabaseConfig
	GHL         GHLConfig
	Stripe      StripeConfig
	JWT         JWTConfig
	Orders      OrdersConfig

	// UpstreamDebug controls whether raw upstream payloads are echoed back
	// to callers in the debug field of response envelopes. Off by default.
	UpstreamDebug bool
}

// DatabaseConfig holds records store configuration
type DatabaseConfig struct {
	Path           string
	MigrationsPath string
	MaxOpenConns   int
	MaxIdleConns   int
}

// GHLConfig holds upstream CRM API configuration
type GHLConfig struct {
	BaseURL string
}

// StripeConfig holds payment processor configuration
type StripeConfig struct {
	SecretKey string
}

// JWTConfig holds signing configuration for impersonation tokens
type JWTConfig struct {
	Secret                  string
	ImpersonationTTLMinutes int
}

// OrdersConfig holds order identifier configuration
type OrdersConfig struct {
	IDPrefix string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PATH", "./data/leadportal.db")
	viper.SetDefault("DB_MIGRATIONS_PATH", "./migrations")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 1)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 1)
	viper.SetDefault("GHL_BASE_URL", "https://services.leadconnectorhq.com")
	viper.SetDefault("IMPERSONATION_TTL_MINUTES", 15)
	viper.SetDefault("ORDER_ID_PREFIX", "ACA")
	viper.SetDefault("UPSTREAM_DEBUG", false)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Database: DatabaseConfig{
			Path:           viper.GetString("DB_PATH"),
			MigrationsPath: viper.GetString("DB_MIGRATIONS_PATH"),
			MaxOpenConns:   viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:   viper.GetInt("DB_MAX_IDLE_CONNS"),
		},
		GHL: GHLConfig{
			BaseURL: viper.GetString("GHL_BASE_URL"),
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
		},
		JWT: JWTConfig{
			Secret:                  viper.GetString("JWT_SECRET"),
			ImpersonationTTLMinutes: viper.GetInt("IMPERSONATION_TTL_MINUTES"),
		},
		Orders: OrdersConfig{
			IDPrefix: viper.GetString("ORDER_ID_PREFIX"),
		},
		UpstreamDebug: viper.GetBool("UPSTREAM_DEBUG"),
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

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
