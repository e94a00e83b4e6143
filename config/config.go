// Package config reads the settings shared by the tock commands from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port          int    `env:"TOCK_PORT"`
	Players       int    `env:"TOCK_PLAYERS"`
	Seed          int64  `env:"TOCK_SEED"`
	MaxSteps      int    `env:"TOCK_MAX_STEPS"`
	MaxIdleRounds int    `env:"TOCK_MAX_IDLE_ROUNDS"`
	LogLevel      string `env:"TOCK_LOG_LEVEL"`
	Dev           bool   `env:"TOCK_DEV"`
}

// Default returns the settings used when nothing is set.
func Default() Config {
	return Config{
		Port:          8000,
		Players:       4,
		MaxSteps:      10000,
		MaxIdleRounds: 100,
		LogLevel:      "info",
	}
}

// Load reads the given .env files, or ./.env when none are named, then
// overrides the defaults with whatever TOCK_ variables are set. Missing
// .env files are ignored.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	cfg := Default()
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Players != 2 && c.Players != 4 && c.Players != 6:
		return fmt.Errorf("%w: TOCK_PLAYERS must be 2, 4 or 6, got %d", ErrInvalidConfig, c.Players)
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("%w: TOCK_PORT out of range: %d", ErrInvalidConfig, c.Port)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: TOCK_MAX_STEPS must not be negative", ErrInvalidConfig)
	case c.MaxIdleRounds < 0:
		return fmt.Errorf("%w: TOCK_MAX_IDLE_ROUNDS must not be negative", ErrInvalidConfig)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Addr is the address the web server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Logger builds a production logger, or a development one when Dev is set.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	if c.Dev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
