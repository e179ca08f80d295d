// Package config loads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// PhotoDirEnv overrides the directory the photo picker opens in.
	PhotoDirEnv = "PORTFOLIO_PHOTO_DIR"
	// LogFileEnv enables logging to the named file.
	LogFileEnv = "PORTFOLIO_LOG_FILE"
	// AltScreenEnv toggles the alternate screen buffer.
	AltScreenEnv = "PORTFOLIO_ALT_SCREEN"
	// OTLPEndpointEnv enables trace export when set.
	OTLPEndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv names the service in exported traces.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	DefaultServiceName = "portfolio"
)

// Config holds all runtime settings.
type Config struct {
	PhotoDir     string
	LogFile      string
	AltScreen    bool
	OTLPEndpoint string
	ServiceName  string
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg := Config{
		PhotoDir:     opt(PhotoDirEnv),
		LogFile:      opt(LogFileEnv),
		AltScreen:    true,
		OTLPEndpoint: opt(OTLPEndpointEnv),
		ServiceName:  opt(ServiceNameEnv),
	}
	if cfg.PhotoDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve photo dir: %w", err)
		}
		cfg.PhotoDir = home
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if v := opt(AltScreenEnv); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: invalid boolean %q", AltScreenEnv, v)
		}
		cfg.AltScreen = b
	}
	return cfg, nil
}
