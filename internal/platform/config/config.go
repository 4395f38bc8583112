package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DefaultLocale string
	RateLimit     limiter.Rate
	CORSEnabled   bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("RATE_LIMIT", "60-M")
	viper.SetDefault("CORS_ENABLED", true)

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DefaultLocale = viper.GetString("DEFAULT_LOCALE")
	cfg.CORSEnabled = viper.GetBool("CORS_ENABLED")

	// RATE_LIMIT uses the ulule format, e.g. "60-M" for 60 requests/minute.
	rate, err := limiter.NewRateFromFormatted(viper.GetString("RATE_LIMIT"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	cfg.RateLimit = rate

	return cfg, nil
}
