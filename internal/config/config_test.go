package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"TMDB_API_KEY", "TMDB_BASE_URL", "TMDB_IMAGE_BASE_URL", "TMDB_LANGUAGE", "TMDB_TIMEOUT",
	"DB_URL", "SESSION_SECRET", "APP_ORIGIN", "QUICK_SEARCH_DEBOUNCE", "ENV", "DEBUG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", " key ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.BaseURL)
	assert.Equal(t, "https://image.tmdb.org/t/p", cfg.ImageBaseURL)
	assert.Equal(t, "en-US", cfg.Language)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultDBURL, cfg.DBURL)
	assert.Equal(t, 300*time.Millisecond, cfg.QuickSearchDebounce)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.SessionSecretGenerated)
	assert.Len(t, cfg.SessionSecret, 2*minSessionSecretLen)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequired))
	assert.Equal(t, "TMDB_API_KEY", Key(err))
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", "key")
	t.Setenv("TMDB_LANGUAGE", "id-ID")
	t.Setenv("TMDB_TIMEOUT", "2s")
	t.Setenv("QUICK_SEARCH_DEBOUNCE", "150")
	t.Setenv("DB_URL", "postgres://u:p@localhost/mellow")
	t.Setenv("APP_ORIGIN", "https://mellow.example/")
	t.Setenv("SESSION_SECRET", strings.Repeat("s", 40))
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "id-ID", cfg.Language)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 150*time.Millisecond, cfg.QuickSearchDebounce)
	assert.Equal(t, "postgres://u:p@localhost/mellow", cfg.DBURL)
	assert.Equal(t, "https://mellow.example", cfg.AppOrigin)
	assert.False(t, cfg.SessionSecretGenerated)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"TMDB_LANGUAGE":         "fr-FR",
		"TMDB_TIMEOUT":          "soon",
		"QUICK_SEARCH_DEBOUNCE": "-5ms",
		"DEBUG":                 "maybe",
		"APP_ORIGIN":            "mellow.example",
		"SESSION_SECRET":        "short",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("TMDB_API_KEY", "key")
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, key, Key(err))
		})
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("TMDB_API_KEY", "key")
	t.Setenv("ENV", "production")

	_, err := Load()
	assert.ErrorIs(t, err, ErrRequired)
	assert.Equal(t, "SESSION_SECRET", Key(err))
}
