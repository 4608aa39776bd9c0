package config

import (
	"errors"
	"os"
	"time"
)

// Config is loaded once in main and passed into the container. Services
// never read the environment directly.
type Config struct {
	Port string

	// DatabaseURL selects the postgres adapter when set; otherwise the
	// sqlite adapter opens DatabasePath.
	DatabaseURL  string
	DatabasePath string

	JWTSecret string
	JWTTTL    time.Duration

	Environment string
}

const DefaultTokenTTL = time.Hour

func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")

	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	cfg := &Config{
		Port:         envOr("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabasePath: envOr("DATABASE_PATH", "database.db"),
		JWTSecret:    secret,
		JWTTTL:       DefaultTokenTTL,
		Environment:  envOr("GIN_MODE", "development"),
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)

		if err != nil {
			return nil, err
		}

		cfg.JWTTTL = parsed
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
