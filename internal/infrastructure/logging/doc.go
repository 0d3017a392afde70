// Package logging provides structured logging for sitl-core.
//
// It wraps the standard library's log/slog with:
//   - Configuration-driven setup (level, format, output)
//   - Default fields on every record (service, version)
//   - A Default() logger for early startup before config is loaded
//
// Usage:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("simulator launched", "pid", pid)
//
// Component loggers are derived with With:
//
//	simLog := log.With("component", "sim")
package logging
