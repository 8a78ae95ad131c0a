package config

import (
	"errors"
	"strings"
	"time"
)

// APIConfig holds runtime configuration for the API service.
type APIConfig struct {
	Environment   string
	Addr          string
	DatabaseURL   string
	MigrationsDir string
	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
}

// ErrMissingJWTSecret is returned when no signing secret is configured.
// The service must refuse to start rather than mint unverifiable tokens.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET must be set")

// LoadAPIConfig constructs an APIConfig from environment variables.
func LoadAPIConfig() (APIConfig, error) {
	cfg := APIConfig{
		Environment:   GetString("APP_ENV", "development"),
		Addr:          GetString("API_ADDR", ":3001"),
		DatabaseURL:   GetString("DATABASE_URL", "postgres://prepify:prepify@db:5432/prepify?sslmode=disable"),
		MigrationsDir: GetString("DB_MIGRATIONS_DIR", "./db/migrations"),
		JWTSecret:     GetString("JWT_SECRET", ""),
		TokenTTL:      time.Duration(GetInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		BcryptCost:    GetInt("BCRYPT_COST", 10),
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return APIConfig{}, ErrMissingJWTSecret
	}
	return cfg, nil
}
