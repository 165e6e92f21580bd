package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/eventbook/eventbook-go/internal/crypto"
)

type Config struct {
	Port           string
	Env            string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
}

// Load reads configuration from the environment. Production refuses to run
// without an explicit JWT secret; development mints an ephemeral one, which
// invalidates outstanding tokens on restart.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "var/eventbook.db"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}

		secret, err := crypto.NewSecret(32)
		if err != nil {
			slog.Error("failed to generate development JWT secret", "error", err)
			os.Exit(1)
		}
		cfg.JWTSecret = secret
		slog.Warn("JWT_SECRET not set, using an ephemeral development secret")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
