package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every SHIELDMYKEYS_ env var that Load() reads.
var allConfigKeys = []string{
	"SHIELDMYKEYS_LISTEN_ADDR",
	"SHIELDMYKEYS_DB_PATH",
	"SHIELDMYKEYS_SLOT_NAME",
	"SHIELDMYKEYS_LOG_LEVEL",
	"SHIELDMYKEYS_SHUTDOWN_TIMEOUT",
}

// isolateConfigEnv saves and unsets all SHIELDMYKEYS_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores the originals.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SHIELDMYKEYS_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("SHIELDMYKEYS_DB_PATH", "/tmp/test.db")
	t.Setenv("SHIELDMYKEYS_SLOT_NAME", "vault")
	t.Setenv("SHIELDMYKEYS_LOG_LEVEL", "debug")
	t.Setenv("SHIELDMYKEYS_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "vault", cfg.SlotName)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "shieldmykeys.db", cfg.DBPath)
	assert.Equal(t, "savedPasswords", cfg.SlotName)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_LogLevelCaseInsensitive(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SHIELDMYKEYS_LOG_LEVEL", "WARN")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown log level", "SHIELDMYKEYS_LOG_LEVEL", "loud"},
		{"bad shutdown timeout", "SHIELDMYKEYS_SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"zero shutdown timeout", "SHIELDMYKEYS_SHUTDOWN_TIMEOUT", "0s"},
		{"blank slot name", "SHIELDMYKEYS_SLOT_NAME", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
