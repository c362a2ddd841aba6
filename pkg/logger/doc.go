// Package logger builds configured log/slog loggers with sensible defaults.
//
// Defaults are production-safe: JSON output at INFO level. Development setups
// switch to human-readable text at debug level with WithDevelopment. Static
// attributes such as the service name can be attached to every record.
//
//	log := logger.New(
//	    logger.WithService("billingkit"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("server started", slog.String("addr", ":8080"))
//
// The attr helpers (Error, UserID, Component) keep attribute keys consistent
// across the codebase.
package logger
