package config_test

import (
	"testing"
	"time"

	"siap-cuti/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_TIMEZONE", "UTC")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "UTC", cfg.Timezone.String())
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 60*time.Second, cfg.Cache.DashboardTTL)
	assert.Equal(t, "SIAP CUTI Admin", cfg.Mail.FromName)
	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("PORT", "8081")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("MAIL_FROM_ADDRESS", "noreply@example.com")
	t.Setenv("DASHBOARD_CACHE_TTL", "2m")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, "noreply@example.com", cfg.Mail.FromAddress)
	assert.Equal(t, 2*time.Minute, cfg.Cache.DashboardTTL)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_TIMEZONE", "UTC")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	_, err := config.Load()

	assert.Error(t, err)
}
