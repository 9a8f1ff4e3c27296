package config_test

import (
	"testing"

	"github.com/smartthings-community/scenes-app/internal/config"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("fails when CLIENT_ID is missing", func(t *testing.T) {
		t.Setenv("CLIENT_ID", "")
		t.Setenv("CLIENT_SECRET", "secret")
		require.Error(t, config.Validate(config.New()))
	})

	t.Run("fails when CLIENT_SECRET is missing", func(t *testing.T) {
		t.Setenv("CLIENT_ID", "client")
		t.Setenv("CLIENT_SECRET", "")
		require.Error(t, config.Validate(config.New()))
	})

	t.Run("passes with both credentials set", func(t *testing.T) {
		t.Setenv("CLIENT_ID", "client")
		t.Setenv("CLIENT_SECRET", "secret")
		require.NoError(t, config.Validate(config.New()))
	})
}

func TestPort(t *testing.T) {
	t.Run("defaults to 8080", func(t *testing.T) {
		t.Setenv("PORT", "")
		require.Equal(t, ":8080", config.New().GetPort())
	})

	t.Run("prefixes a colon", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		require.Equal(t, ":3000", config.New().GetPort())
	})
}

func TestBaseURL(t *testing.T) {
	t.Run("URL takes precedence over SERVER_URL", func(t *testing.T) {
		t.Setenv("URL", "https://app.example.com")
		t.Setenv("SERVER_URL", "https://other.example.com")
		require.Equal(t, "https://app.example.com", config.New().GetBaseURL())
	})

	t.Run("falls back to SERVER_URL", func(t *testing.T) {
		t.Setenv("URL", "")
		t.Setenv("SERVER_URL", "https://other.example.com")
		require.Equal(t, "https://other.example.com", config.New().GetBaseURL())
	})

	t.Run("strips a trailing slash", func(t *testing.T) {
		t.Setenv("URL", "https://app.example.com/")
		require.Equal(t, "https://app.example.com", config.New().GetBaseURL())
	})

	t.Run("redirect URI appends the callback path", func(t *testing.T) {
		t.Setenv("URL", "https://app.example.com")
		require.Equal(t, "https://app.example.com/oauth/callback", config.New().GetRedirectURI())
	})
}
