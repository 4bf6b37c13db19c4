// Package config provides a type-safe, cached way to load configuration
// structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: values
// come from one or more .env files (falling back to the default .env in the
// working directory) and are parsed into any Go struct using `env` field
// tags. Each configuration type is parsed once per process and served from a
// cache afterwards.
//
// # Usage
//
//	type LoggerConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var c LoggerConfig
//	if err := config.Load(&c); err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// Sentinel errors comparable with errors.Is:
//
//   - ErrParsingConfig - env vars could not be parsed into the struct
//   - ErrNilPointer    - nil pointer passed to Load
//
// MustLoad and MustLoadEnv panic on failure, for configuration the process
// cannot start without. ResetCache exists for tests that mutate the
// environment between loads.
package config
