package sanitizer

import (
	"log/slog"

	"github.com/dmitrymomot/structsan/pkg/config"
	"github.com/dmitrymomot/structsan/pkg/logger"
)

// FromEnv builds a sanitizer from SANITIZER_* environment variables.
// See FromConfig.
func FromEnv[T any](opts ...Option) (*Sanitizer[T], error) {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return FromConfig[T](cfg, opts...)
}

// FromConfig builds a sanitizer from cfg: constraints come from the profile
// at cfg.ProfilePath (none if empty), cfg.Severity overrides the profile's
// severity, and the logger follows cfg.LogLevel and cfg.LogFormat. opts are
// applied last and win over all of these.
func FromConfig[T any](cfg config.Config, opts ...Option) (*Sanitizer[T], error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	profile := Profile{Severity: Relaxed, Constraints: Set{}}
	if cfg.ProfilePath != "" {
		if profile, err = LoadProfile(cfg.ProfilePath); err != nil {
			return nil, err
		}
	}

	if cfg.Severity != "" {
		if profile.Severity, err = ParseSeverity(cfg.Severity); err != nil {
			return nil, err
		}
	}

	logOpts := []logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithComponent("sanitizer"),
	}
	if cfg.ProfilePath != "" {
		logOpts = append(logOpts, logger.WithAttr(slog.String("profile", cfg.ProfilePath)))
	}

	base := append(profile.Options(), WithLogger(logger.New(logOpts...)))
	return New[T](profile.Constraints, append(base, opts...)...)
}
