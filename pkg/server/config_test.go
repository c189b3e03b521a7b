package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elphtools/kmesh/pkg/defaults"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "kmeshd", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.NotZero(t, cfg.RateLimit)
	assert.NotZero(t, cfg.RateLimitBurst)
	assert.NotZero(t, cfg.ReadTimeout)
	assert.NotZero(t, cfg.WriteTimeout)
	assert.NotZero(t, cfg.IdleTimeout)
	assert.NotZero(t, cfg.ShutdownTimeout)
}

func TestConfigPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := NewConfig()
	assert.Equal(t, 9090, cfg.Port)
}

func TestConfigPortInvalidEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := NewConfig()
	assert.Equal(t, 8080, cfg.Port)
}

func TestConfigShutdownTimeoutFromEnv(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg := NewConfig()
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestConfigShutdownTimeoutRejectsNonPositive(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "0")

	cfg := NewConfig()
	assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
}
