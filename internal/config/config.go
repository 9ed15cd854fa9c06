// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr      string
	DBPath          string
	SlotName        string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional:
// SHIELDMYKEYS_LISTEN_ADDR (127.0.0.1:8080), SHIELDMYKEYS_DB_PATH (shieldmykeys.db),
// SHIELDMYKEYS_SLOT_NAME (savedPasswords), SHIELDMYKEYS_LOG_LEVEL (info),
// SHIELDMYKEYS_SHUTDOWN_TIMEOUT (10s).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("SHIELDMYKEYS_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	dbPath := "shieldmykeys.db"
	if v, ok := os.LookupEnv("SHIELDMYKEYS_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	slotName := "savedPasswords"
	if v, ok := os.LookupEnv("SHIELDMYKEYS_SLOT_NAME"); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, errors.New("SHIELDMYKEYS_SLOT_NAME must not be blank")
		}
		slotName = v
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("SHIELDMYKEYS_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("SHIELDMYKEYS_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	shutdownTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("SHIELDMYKEYS_SHUTDOWN_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SHIELDMYKEYS_SHUTDOWN_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("SHIELDMYKEYS_SHUTDOWN_TIMEOUT must be positive, got %s", parsed)
		}
		shutdownTimeout = parsed
	}

	return &Config{
		ListenAddr:      listenAddr,
		DBPath:          dbPath,
		SlotName:        slotName,
		LogLevel:        logLevel,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
