// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default .env file is loaded once per process when present, then
// env.Parse fills any struct annotated with `env` tags. Explicit .env files
// can be loaded with LoadEnv before parsing, which is handy in tests and
// local development.
//
// # Usage
//
//	type ServerConfig struct {
//	    Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Errors wrap the package sentinels (ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer) so callers can branch with errors.Is.
package config
