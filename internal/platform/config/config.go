// Copyright (c) 2026 The Blog API Authors. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, TokenService) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Blog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTKey is the symmetric HMAC signing key for session tokens.
	// An absent or empty key makes [Load] fail, which is startup-fatal:
	// the process must never serve traffic without a signing key.
	JWTKey string `env:"JWT_KEY,required,notEmpty"`

	// APIKey is the shared secret protecting operator-only endpoints.
	APIKey string `env:"API_KEY,required,notEmpty"`

	// APIKeyHeader is the request header carrying the operator API key.
	APIKeyHeader string `env:"API_KEY_HEADER" envDefault:"x-api-key"`

	// SMTP delivery channel for registration credentials
	SMTPHost      string `env:"SMTP_HOST,required"`
	SMTPPort      int    `env:"SMTP_PORT"       envDefault:"587"`
	SMTPUsername  string `env:"SMTP_USERNAME"`
	SMTPPassword  string `env:"SMTP_PASSWORD"`
	SMTPFromName  string `env:"SMTP_FROM_NAME"  envDefault:"Blog Team"`
	SMTPFromEmail string `env:"SMTP_FROM_EMAIL,required"`

	// Image storage for profile pictures
	ImageDir     string `env:"IMAGE_DIR"      envDefault:"./data/images"`
	ImageBaseURL string `env:"IMAGE_BASE_URL" envDefault:"http://localhost:8080/images"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
