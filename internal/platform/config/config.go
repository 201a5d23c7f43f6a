package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// InternalServiceToken guards the /internal routes (deadline sweep trigger).
	InternalServiceToken string

	// PlatformAccountID is the user ID whose wallet collects platform fees.
	PlatformAccountID string

	// Deadline sweeper
	SweepEnabled  bool
	SweepInterval time.Duration
	SweepBatch    int

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP.
	RateLimit string

	PosthogAPIKey   string
	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "microjob-backend")
	viper.SetDefault("INTERNAL_SERVICE_TOKEN", "")
	viper.SetDefault("PLATFORM_ACCOUNT_ID", "platform")
	viper.SetDefault("SWEEP_ENABLED", true)
	viper.SetDefault("SWEEP_INTERVAL", "5m")
	viper.SetDefault("SWEEP_BATCH", 100)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.InternalServiceToken = viper.GetString("INTERNAL_SERVICE_TOKEN")
	if cfg.InternalServiceToken == "" {
		log.Println("Warning: INTERNAL_SERVICE_TOKEN not set. Internal endpoints will reject all requests.")
	}

	cfg.PlatformAccountID = viper.GetString("PLATFORM_ACCOUNT_ID")

	cfg.SweepEnabled = viper.GetBool("SWEEP_ENABLED")
	sweepIntervalStr := viper.GetString("SWEEP_INTERVAL")
	sweepInterval, err := time.ParseDuration(sweepIntervalStr)
	if err != nil || sweepInterval <= 0 {
		sweepInterval = 5 * time.Minute
		log.Printf("Warning: Invalid value for SWEEP_INTERVAL ('%s'). Defaulting to %s.\n", sweepIntervalStr, sweepInterval.String())
	}
	cfg.SweepInterval = sweepInterval
	cfg.SweepBatch = viper.GetInt("SWEEP_BATCH")
	if cfg.SweepBatch <= 0 {
		cfg.SweepBatch = 100
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
