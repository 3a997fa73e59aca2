// Package logger builds the *slog.Logger used by the sanitizer and provides
// attribute helpers that keep key names consistent across log records.
//
// New creates a logger configured by functional options:
//
//   - WithFormat selects the output format (JSON is the default).
//   - WithLevel sets the minimum level (info by default).
//   - WithOutput redirects records (stdout by default).
//   - WithAttr and WithComponent attach static attributes to every record.
//
// ParseLevel and ParseFormat turn configuration strings into option values.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithComponent("import-job"),
//	)
//
//	log.Debug("repaired invalid value",
//	    logger.Field("Email"),
//	    logger.Constraint("valid_email"),
//	)
//
// Error and Errors only produce an attribute when there is something to log,
// so they can be passed without a nil check:
//
//	log.Warn("record sanitized with errors", logger.Error(err))
package logger
