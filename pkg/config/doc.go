// Package config loads sanitizer settings from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file in the working directory is read once (a missing
// file is not an error), then the environment is parsed into a struct using
// `env` field tags.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Config describes the variables understood by the sanitizer:
//
//	SANITIZER_SEVERITY    relaxed | strict          (default: profile, then relaxed)
//	SANITIZER_PROFILE     path to a YAML constraint profile
//	SANITIZER_LOG_LEVEL   debug | info | warn | error (default info)
//	SANITIZER_LOG_FORMAT  json | text                (default json)
//
// Load accepts any struct, so applications can embed Config in their own
// settings. WithPrefix namespaces variables and WithEnvironment replaces the
// process environment, which keeps tests hermetic.
//
// # Error handling
//
// Parsing failures are joined with ErrParsingConfig so callers can test for
// them with errors.Is. MustLoad panics instead of returning an error.
package config
