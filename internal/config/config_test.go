package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("STILLPOINT_SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("STILLPOINT_SUPABASE_ANON_KEY", "anon")
	t.Setenv("STILLPOINT_SUPABASE_SERVICE_ROLE_KEY", "service")
	t.Setenv("STILLPOINT_SUPABASE_JWT_SECRET", "jwt-secret")
}

func TestConfigLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "assets", cfg.AssetBucket)
	assert.Equal(t, 3600, cfg.SignedURLTTLSeconds)
	assert.Equal(t, 30, cfg.HealthIntervalSeconds)
	assert.Equal(t, 5, cfg.HealthProbeTimeoutSeconds)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
}

func TestConfigLoad_MissingRequiredFails(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STILLPOINT_SUPABASE_JWT_SECRET", "")

	_, err := New()
	require.Error(t, err)
}

func TestConfigLoad_TrailingSlashTrimmed(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STILLPOINT_SUPABASE_URL", "https://proj.supabase.co/")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://proj.supabase.co", cfg.SupabaseURL)
}

func TestConfigLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STILLPOINT_HTTP_PORT", "9090")
	t.Setenv("STILLPOINT_CORS_ORIGINS", "https://app.example.com,https://staging.example.com")
	t.Setenv("STILLPOINT_ENVIRONMENT", "production")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestConfigLoad_NonPositiveTTLRejected(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STILLPOINT_SIGNED_URL_TTL_SECONDS", "0")

	_, err := New()
	require.Error(t, err)
}
