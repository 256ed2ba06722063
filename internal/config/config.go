package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBConn        string
	LogLevel      string
	JWTSecret     string
	HMACSecret    string
	EncryptionKey string

	// Market rate feed
	RateFeedURL     string
	RateCacheTTL    time.Duration
	RateFallbackTTL time.Duration // how long fallback rates stand in during a feed outage
	FallbackRate30  float64
	FallbackRate15  float64
	RedisAddr       string // empty keeps the rate cache in memory

	// Lead notifications
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
	BrokerEmail  string

	// Scheduled jobs
	DigestSchedule      string
	RateRefreshSchedule string

	MigrationsPath string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=realty sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		HMACSecret:    getEnv("HMAC_SECRET", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),
		EncryptionKey: getEnv("ENCRYPTION_KEY", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),

		RateFeedURL: getEnv("RATE_FEED_URL", "https://www.freddiemac.com/pmms/pmms.xml"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "no-reply@nehoustonhomes.com"),
		BrokerEmail:  getEnv("BROKER_EMAIL", ""),

		DigestSchedule:      getEnv("DIGEST_SCHEDULE", "0 8 * * *"),
		RateRefreshSchedule: getEnv("RATE_REFRESH_SCHEDULE", "@every 1h"),

		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}

	var err error
	if cfg.RateCacheTTL, err = getDuration("RATE_CACHE_TTL", 6*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RateFallbackTTL, err = getDuration("RATE_FALLBACK_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.FallbackRate30, err = getFloat("FALLBACK_RATE_30", 6.5); err != nil {
		return nil, err
	}
	if cfg.FallbackRate15, err = getFloat("FALLBACK_RATE_15", 5.75); err != nil {
		return nil, err
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.HMACSecret == "" {
		return nil, fmt.Errorf("HMAC_SECRET is required")
	}
	if n := len(cfg.EncryptionKey); n != 16 && n != 24 && n != 32 {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be 16, 24, or 32 bytes, got %d", n)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultVal, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return v, nil
}
