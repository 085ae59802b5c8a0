package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exonian/articlebot/server/config"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := config.LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, config.DefaultStatePath, s.StatePath)
		assert.Equal(t, config.DefaultSweepInterval, s.SweepInterval)
		assert.Equal(t, config.DefaultAPITimeout, s.APITimeout)
		assert.Equal(t, "info", s.LogLevel)
	})

	t.Run("yaml-file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"state_path: /var/lib/articlebot/state.json\n"+
				"sweep_interval: 2m\n"+
				"api_timeout: 30s\n"+
				"log_level: debug\n"), 0o600))

		s, err := config.LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/articlebot/state.json", s.StatePath)
		assert.Equal(t, 2*time.Minute, s.SweepInterval)
		assert.Equal(t, 30*time.Second, s.APITimeout)
		assert.Equal(t, "debug", s.LogLevel)
	})

	t.Run("env-overrides-file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sweep_interval: 2m\n"), 0o600))
		t.Setenv("ARTICLEBOT_SWEEP_INTERVAL", "90s")

		s, err := config.LoadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, s.SweepInterval)
	})

	t.Run("unknown-key-rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("sweep_intervall: 2m\n"), 0o600))

		_, err := config.LoadSettings(path)
		assert.Error(t, err)
	})

	t.Run("bad-duration-rejected", func(t *testing.T) {
		t.Setenv("ARTICLEBOT_API_TIMEOUT", "soon")

		_, err := config.LoadSettings("")
		assert.Error(t, err)
	})

	t.Run("non-positive-interval-rejected", func(t *testing.T) {
		t.Setenv("ARTICLEBOT_SWEEP_INTERVAL", "-5m")

		_, err := config.LoadSettings("")
		assert.Error(t, err)
	})
}
