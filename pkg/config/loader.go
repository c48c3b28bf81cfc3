// Package config loads application settings from the environment.
//
// Values come from process environment variables, optionally seeded from
// one or more .env files through github.com/joho/godotenv, and are parsed
// into tagged structs by github.com/caarlos0/env/v11.
//
//	cfg, err := config.LoadApp()
//	if err != nil {
//		return err
//	}
//	log := logger.New(logger.WithEnvironment(string(cfg.Env), "formguard"))
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnv reads the default .env file once per process and remembers the
// outcome.
var defaultEnv = sync.OnceValue(func() error {
	return LoadEnv()
})

// LoadEnv seeds the environment from the given .env files. Variables already
// set in the process win. With no paths the default ".env" is read and a
// missing file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil && !isNotExist(err) {
			return err
		}
		return nil
	}
	return godotenv.Load(paths...)
}

// Load parses the environment into v using its env struct tags. The default
// .env file is read once per process before the first parse; a file that
// exists but cannot be parsed fails every Load with ErrLoadingEnvFile.
//
//	type OTPConfig struct {
//		DemoCode string        `env:"OTP_DEMO_CODE" envDefault:"123456"`
//		Cooldown time.Duration `env:"OTP_RESEND_COOLDOWN" envDefault:"30s"`
//	}
//
//	var cfg OTPConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := defaultEnv(); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadWithEnvironment parses v from the given key/value map only, ignoring
// the process environment.
func LoadWithEnvironment[T any](v *T, environ map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Environment: environ}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
