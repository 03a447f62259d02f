// Package config loads argverify settings from the environment.
//
// Values come from ARGVERIFY_* variables, optionally seeded from .env files
// through github.com/joho/godotenv, and are parsed with
// github.com/caarlos0/env/v11:
//
//	ARGVERIFY_ENV=ci              # logger defaults (json/info for ci, prod)
//	ARGVERIFY_LOG_LEVEL=debug
//	ARGVERIFY_LOG_FORMAT=text     # json or text, overrides ARGVERIFY_ENV
//	ARGVERIFY_STRICT=true         # malformed rule specs panic
//	ARGVERIFY_MISSING=report      # compare (default) or report
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	log := logger.New(cfg.LoggerOptions()...)
//	v := argverify.New(append(cfg.VerifierOptions(), argverify.WithLogger(log))...)
package config
