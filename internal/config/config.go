package config

import (
	"os"
	"strconv"

	"github.com/thanwa-dev/priceboard/internal/currency"
)

type Config struct {
	Port string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	// DBMaxOpenConns is the maximum number of open connections to the database (default 25).
	DBMaxOpenConns int
	// DBMaxIdleConns is the maximum number of idle connections (default 5).
	DBMaxIdleConns int

	// SessionSecret signs and encrypts the admin session cookie.
	// When Env is "prod" it must be set and not the default.
	SessionSecret string

	// Env is "dev" (default) or "prod".
	Env string

	// ExchangeRateTHB is the static USD->THB rate used by both the admin
	// console and the price feed. Set via EXCHANGE_RATE_THB.
	ExchangeRateTHB float64

	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	// When empty, the server listens with plain HTTP.
	TLSCertFile string
	TLSKeyFile  string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBName: getEnv("DB_NAME", "priceboard"),
		DBUser: getEnv("DB_USER", "priceboard"),
		DBPass: getEnv("DB_PASS", "priceboard"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		SessionSecret: getEnv("SESSION_SECRET", "dev-insecure-secret"),
		Env:           getEnv("ENV", "dev"),

		ExchangeRateTHB: getEnvFloat("EXCHANGE_RATE_THB", currency.THBPerUSD),

		// Optional TLS configuration for HTTPS.
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
	}
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
