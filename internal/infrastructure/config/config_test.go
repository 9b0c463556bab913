package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "database.sqlite", cfg.Database.Path)
	assert.Equal(t, 168*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KSS_APP_PORT", "8080")
	t.Setenv("KSS_DATABASE_DRIVER", "postgres")
	t.Setenv("KSS_APP_ADMIN_EMAIL", "owner@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "owner@example.com", cfg.App.AdminEmail)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("KSS_DATABASE_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.driver")
}

func TestProductionValidation(t *testing.T) {
	t.Run("requires long jwt secret", func(t *testing.T) {
		t.Setenv("KSS_APP_ENV", "production")
		t.Setenv("KSS_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("forbids sslmode disable on postgres", func(t *testing.T) {
		t.Setenv("KSS_APP_ENV", "production")
		t.Setenv("KSS_JWT_SECRET", "test-secret-at-least-32-characters!!")
		t.Setenv("KSS_DATABASE_DRIVER", "postgres")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("forbids wildcard cors", func(t *testing.T) {
		t.Setenv("KSS_APP_ENV", "production")
		t.Setenv("KSS_JWT_SECRET", "test-secret-at-least-32-characters!!")
		t.Setenv("KSS_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("accepts a complete production config", func(t *testing.T) {
		t.Setenv("KSS_APP_ENV", "production")
		t.Setenv("KSS_JWT_SECRET", "test-secret-at-least-32-characters!!")
		t.Setenv("KSS_DATABASE_DRIVER", "sqlite")
		t.Setenv("KSS_HTTP_CORS_ALLOW_ORIGINS", "https://kimberlyscents.example")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDSNEscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "p@ss w:rd/#",
		DBName:   "kimberly_scents",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss w:rd/#")
}
