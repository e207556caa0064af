package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig is the flat environment mapping read by cleanenv.
//
//	PORT             - Server port (default: "8080")
//	ENVIRONMENT      - Runtime environment (default: "development")
//	DATABASE_URL     - "memory" / empty for in-memory, or a postgres:// URL
//	ADMIN_JWT_SECRET - Optional; enables the admin JWT check when set
type envConfig struct {
	Port           string `env:"PORT" env-default:""`
	Environment    string `env:"ENVIRONMENT" env-default:""`
	DatabaseURL    string `env:"DATABASE_URL" env-default:""`
	AdminJWTSecret string `env:"ADMIN_JWT_SECRET" env-default:""`
}

// WithEnv applies environment variable overrides on top of the defaults.
func WithEnv() Option {
	return func(c *ServerConfig) error {
		var env envConfig
		if err := cleanenv.ReadEnv(&env); err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}

		if env.Port != "" {
			c.Port = env.Port
		}
		if env.Environment != "" {
			c.Environment = env.Environment
		}
		if env.AdminJWTSecret != "" {
			c.AdminJWTSecret = env.AdminJWTSecret
		}

		return applyDatabaseURL(c, env.DatabaseURL)
	}
}

// applyDatabaseURL auto-detects the database type from the URL scheme.
func applyDatabaseURL(c *ServerConfig, dbURL string) error {
	if dbURL == "" || dbURL == "memory" {
		c.DatabaseType = "memory"
		c.DatabaseURL = ""
		return nil
	}

	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		c.DatabaseType = "postgres"
		c.DatabaseURL = dbURL
		return nil
	}

	return fmt.Errorf("unsupported DATABASE_URL format: %s (use 'memory' or 'postgresql://...')", dbURL)
}
