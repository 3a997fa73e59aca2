package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the sanitizer settings.
type Config struct {
	// Severity is "relaxed" or "strict". Empty defers to the profile, then relaxed.
	Severity string `env:"SANITIZER_SEVERITY"`
	// ProfilePath points to a YAML constraint profile. Optional.
	ProfilePath string `env:"SANITIZER_PROFILE"`
	LogLevel    string `env:"SANITIZER_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"SANITIZER_LOG_FORMAT" envDefault:"json"`
}

var defaultEnvLoaded sync.Once

// Option adjusts how Load parses the environment.
type Option func(*env.Options)

// WithPrefix prepends prefix to every variable name, e.g. "IMPORT_" turns
// SANITIZER_SEVERITY into IMPORT_SANITIZER_SEVERITY.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// Load parses environment variables into v according to its `env` tags.
//
// The first call also loads the default .env file, if present. Values already
// set in the process environment take precedence over the file.
//
// Example:
//
//	type ImportSettings struct {
//		config.Config
//		BatchSize int `env:"IMPORT_BATCH_SIZE" envDefault:"500"`
//	}
//
//	var s ImportSettings
//	if err := config.Load(&s); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Unlike the implicit default
// file, a missing explicit file is an error.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
