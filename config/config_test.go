package config_test

import (
	"testing"

	"go-treeservices-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "kyle@lmktreeservices.com", cfg.NotificationEmail)
	assert.Equal(t, "LMK Tree Services <kyle@lmktreeservices.com>", cfg.FromAddress)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 5, cfg.RateLimitConsultationThreshold)
	assert.Equal(t, 100, cfg.RateLimitGlobalThreshold)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NOTIFICATION_EMAIL", "leads@lmktreeservices.com")
	t.Setenv("FRONTEND_URL", "https://lmktreeservices.com/")
	t.Setenv("RATE_LIMIT_CONSULTATION_THRESHOLD", "2")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "not-a-number")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "leads@lmktreeservices.com", cfg.NotificationEmail)
	// Trailing slash is stripped
	assert.Equal(t, "https://lmktreeservices.com", cfg.FrontendURL)
	assert.Equal(t, 2, cfg.RateLimitConsultationThreshold)
	// Invalid integers fall back to the default
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
}
