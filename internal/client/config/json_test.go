package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_url":           "https://api.clinic.example",
		"request_timeout":   "45s",
		"clinician_role_id": 3,
		"identity_strategy": "profile",
	})

	t.Run("loads known keys", func(t *testing.T) {
		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg, []string{"-config", path})

		assert.Equal(t, "https://api.clinic.example", cfg.APIURL)
		assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 3, cfg.ClinicianRoleID)
		assert.Equal(t, "profile", cfg.IdentityStrategy)
	})

	t.Run("absent keys keep earlier values", func(t *testing.T) {
		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg, []string{"-c", path})

		assert.Equal(t, "journal.db", cfg.JournalDSN)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		cfg := Config{APIURL: "http://keep:1"}
		parseJson(&cfg, []string{"-a", "http://other:2"})
		assert.Equal(t, "http://keep:1", cfg.APIURL)
	})

	t.Run("numeric timeout is seconds", func(t *testing.T) {
		numeric := writeTempJSON(t, map[string]any{"request_timeout": 30})
		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg, []string{"-c", numeric})

		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		require.NoError(t, cfg.Validate())
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "none.json")}) })
	})
}
