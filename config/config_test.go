package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var allVars = []string{
	"TOCK_PORT", "TOCK_PLAYERS", "TOCK_SEED", "TOCK_MAX_STEPS",
	"TOCK_MAX_IDLE_ROUNDS", "TOCK_LOG_LEVEL", "TOCK_DEV",
}

// clearEnv unsets every TOCK_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range allVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(missingFile(t))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, ":8000", cfg.Addr())
	})

	t.Run("reads the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TOCK_PORT", "9090")
		t.Setenv("TOCK_PLAYERS", "6")
		t.Setenv("TOCK_SEED", "42")
		t.Setenv("TOCK_MAX_STEPS", "500")
		t.Setenv("TOCK_MAX_IDLE_ROUNDS", "7")
		t.Setenv("TOCK_LOG_LEVEL", "debug")
		t.Setenv("TOCK_DEV", "true")

		cfg, err := Load(missingFile(t))
		require.NoError(t, err)
		assert.Equal(t, Config{
			Port:          9090,
			Players:       6,
			Seed:          42,
			MaxSteps:      500,
			MaxIdleRounds: 7,
			LogLevel:      "debug",
			Dev:           true,
		}, cfg)
	})

	t.Run("reads a .env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "tock.env")
		require.NoError(t, os.WriteFile(path, []byte("TOCK_PLAYERS=2\nTOCK_SEED=3\n"), 0o600))
		t.Cleanup(func() {
			os.Unsetenv("TOCK_PLAYERS")
			os.Unsetenv("TOCK_SEED")
		})

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Players)
		assert.Equal(t, int64(3), cfg.Seed)
		assert.Equal(t, 8000, cfg.Port)
	})

	t.Run("the environment wins over a .env file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TOCK_PLAYERS", "6")
		path := filepath.Join(t.TempDir(), "tock.env")
		require.NoError(t, os.WriteFile(path, []byte("TOCK_PLAYERS=2\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Players)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for name, value := range map[string]string{
			"TOCK_PLAYERS":   "3",
			"TOCK_PORT":      "70000",
			"TOCK_LOG_LEVEL": "chatty",
			"TOCK_MAX_STEPS": "-1",
		} {
			clearEnv(t)
			t.Setenv(name, value)

			_, err := Load(missingFile(t))
			assert.ErrorIs(t, err, ErrInvalidConfig, name)
		}
	})

	t.Run("rejects values that do not parse", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TOCK_PLAYERS", "four")

		_, err := Load(missingFile(t))
		assert.Error(t, err)
	})
}

func TestLogger(t *testing.T) {
	t.Run("uses the configured level", func(t *testing.T) {
		cfg := Default()
		cfg.LogLevel = "warn"

		logger, err := cfg.Logger()
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("development logger", func(t *testing.T) {
		cfg := Default()
		cfg.Dev = true
		cfg.LogLevel = "debug"

		logger, err := cfg.Logger()
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := Default()
		cfg.LogLevel = "loud"

		_, err := cfg.Logger()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
