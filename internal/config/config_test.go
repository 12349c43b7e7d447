// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		RemoteStore: RemoteStoreConfig{
			Mode:    RemoteStoreModeRest,
			BaseURL: "https://store.example.com",
			APIKey:  "test-key",
			Timeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host: "localhost",
			Name: "storefront_db",
			User: "storefront_user",
		},
		Redis: RedisConfig{Host: "localhost", Port: "6379"},
		JWT:   JWTConfig{Secret: "a-secret-that-is-at-least-32-chars-long"},
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a valid rest mode config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("rejects a short JWT secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWT.Secret = "too-short"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("rest mode requires a base URL and api key", func(t *testing.T) {
		cfg := validConfig()
		cfg.RemoteStore.BaseURL = ""
		require.Error(t, cfg.Validate())

		cfg = validConfig()
		cfg.RemoteStore.APIKey = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("postgres mode requires database settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.RemoteStore.Mode = RemoteStoreModePostgres
		cfg.RemoteStore.BaseURL = ""
		cfg.RemoteStore.APIKey = ""
		assert.NoError(t, cfg.Validate())

		cfg.Database.Host = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects the default JWT secret in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "production"
		cfg.JWT.Secret = defaultJWTSecret

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")

		// The same default is tolerated during development.
		cfg.App.Environment = "development"
		assert.NoError(t, cfg.Validate())

		// An explicit production secret passes.
		cfg.App.Environment = "production"
		cfg.JWT.Secret = "an-explicit-production-secret-over-32-chars"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects an unknown remote store mode", func(t *testing.T) {
		cfg := validConfig()
		cfg.RemoteStore.Mode = "sqlite"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "REMOTE_STORE_MODE")
	})
}

func TestGetRedisAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
