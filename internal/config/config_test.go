package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("missing bot token", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "")
		t.Setenv("API_BASE_URL", "http://localhost:5000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("missing api base url", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_BASE_URL")
	})

	t.Run("default timeout", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "http://localhost:5000")
		t.Setenv("API_TIMEOUT_SECONDS", "")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "123:abc", cfg.BotToken)
		assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
		assert.Equal(t, 30*time.Second, cfg.APITimeout)
	})

	t.Run("custom timeout", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "http://localhost:5000")
		t.Setenv("API_TIMEOUT_SECONDS", "5")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.APITimeout)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("API_BASE_URL", "http://localhost:5000")
		t.Setenv("API_TIMEOUT_SECONDS", "zero")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestGetEnv(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("TEST_KEY", "value")
		assert.Equal(t, "value", getEnv("TEST_KEY", "default"))
	})

	t.Run("returns default when empty", func(t *testing.T) {
		t.Setenv("TEST_KEY", "")
		assert.Equal(t, "default", getEnv("TEST_KEY", "default"))
	})
}
