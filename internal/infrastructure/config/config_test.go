package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "NomNom", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "nomnom-session", cfg.Session.CookieName)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Suggestion.BaseURL)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.IsDevelopment())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NOMNOM_SERVER_PORT", "9090")
	t.Setenv("NOMNOM_DATABASE_DRIVER", "sqlite")
	t.Setenv("NOMNOM_SUGGESTION_API_KEY", "secret-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "secret-key", cfg.Suggestion.APIKey)
}

func TestValidate(t *testing.T) {
	t.Run("BadDriver", func(t *testing.T) {
		t.Setenv("NOMNOM_DATABASE_DRIVER", "oracle")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("ProductionRequiresAPIKey", func(t *testing.T) {
		t.Setenv("NOMNOM_APP_ENVIRONMENT", "production")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "suggestion.api_key")
	})
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = 5432
	cfg.Database.Username = "nomnom"
	cfg.Database.Password = "pw"
	cfg.Database.Database = "nomnom"
	cfg.Database.SSLMode = "disable"

	assert.Equal(t,
		"host=db.internal port=5432 user=nomnom password=pw dbname=nomnom sslmode=disable",
		cfg.GetDSN(),
	)
}
