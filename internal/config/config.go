package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the backend service.
// Environment variables are automatically parsed from the STILLPOINT_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort    int      `envconfig:"HTTP_PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	// Supabase Configuration. All four are required; the process refuses to
	// start without them.
	SupabaseURL            string `envconfig:"SUPABASE_URL" required:"true"`
	SupabaseAnonKey        string `envconfig:"SUPABASE_ANON_KEY" required:"true"`
	SupabaseServiceRoleKey string `envconfig:"SUPABASE_SERVICE_ROLE_KEY" required:"true"`
	SupabaseJWTSecret      string `envconfig:"SUPABASE_JWT_SECRET" required:"true"`

	// Asset Configuration
	AssetBucket         string `envconfig:"ASSET_BUCKET" default:"assets"`
	SignedURLTTLSeconds int    `envconfig:"SIGNED_URL_TTL_SECONDS" default:"3600"`

	// Health Configuration
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"5"`
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with STILLPOINT_
// Example: STILLPOINT_SUPABASE_URL, STILLPOINT_HTTP_PORT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("STILLPOINT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	// PostgREST paths are joined onto the base URL; a trailing slash would
	// produce double separators.
	cfg.SupabaseURL = strings.TrimRight(cfg.SupabaseURL, "/")

	if cfg.SignedURLTTLSeconds <= 0 {
		return nil, fmt.Errorf("SIGNED_URL_TTL_SECONDS must be positive, got %d", cfg.SignedURLTTLSeconds)
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("supabase_url", cfg.SupabaseURL).
		Str("asset_bucket", cfg.AssetBucket).
		Int("signed_url_ttl_seconds", cfg.SignedURLTTLSeconds).
		Msg("Configuration loaded")

	return &cfg, nil
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
