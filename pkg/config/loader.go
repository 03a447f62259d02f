package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/argverify"
	"github.com/dmitrymomot/argverify/pkg/logger"
)

// Prefix is prepended to every environment variable name read by Load.
const Prefix = "ARGVERIFY_"

// Config holds settings for the argverify command.
type Config struct {
	Env       string                  `env:"ENV" envDefault:"development"`
	LogLevel  slog.Level              `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat logger.Format           `env:"LOG_FORMAT"`
	Strict    bool                    `env:"STRICT" envDefault:"false"`
	Missing   argverify.MissingPolicy `env:"MISSING" envDefault:"compare"`
}

// Load reads the given .env files, then parses ARGVERIFY_* variables.
// Without files it tries ./.env and ignores its absence. Variables already
// set in the process environment are never overridden by files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// LoggerOptions converts the logging settings into logger options.
// An explicit LogFormat overrides the environment default.
func (c Config) LoggerOptions() []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env),
		logger.WithLevel(c.LogLevel),
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(c.LogFormat))
	}
	return opts
}

// VerifierOptions converts the verification settings into argverify options.
func (c Config) VerifierOptions() []argverify.Option {
	opts := []argverify.Option{argverify.WithMissingPolicy(c.Missing)}
	if c.Strict {
		opts = append(opts, argverify.WithStrictRules())
	}
	return opts
}
