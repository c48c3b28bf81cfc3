package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"
)

// Environment names the deployment the binary runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// App holds every setting the portal reads.
type App struct {
	Env       Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel  slog.Level  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string      `env:"LOG_FORMAT" envDefault:"text"`

	SubmitDelay time.Duration `env:"SUBMIT_DELAY" envDefault:"2s"`

	OTPDelay         time.Duration `env:"OTP_DELAY" envDefault:"1s"`
	OTPCooldown      time.Duration `env:"OTP_RESEND_COOLDOWN" envDefault:"30s"`
	OTPDemoCode      string        `env:"OTP_DEMO_CODE" envDefault:"123456"`
	OTPGenerateCodes bool          `env:"OTP_GENERATE_CODES" envDefault:"false"`

	PincodeDelay     time.Duration `env:"PINCODE_DELAY" envDefault:"1s"`
	PincodeCacheSize int           `env:"PINCODE_CACHE_SIZE" envDefault:"64"`

	AttachmentMaxBytes int64 `env:"ATTACHMENT_MAX_BYTES" envDefault:"5242880"`
}

// LoadApp loads and validates the application config.
func LoadApp() (App, error) {
	var cfg App
	if err := Load(&cfg); err != nil {
		return App{}, err
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Validate rejects settings that parse but cannot work.
func (c App) Validate() error {
	var errs []error
	switch c.Env {
	case Development, Staging, Production:
	default:
		errs = append(errs, fmt.Errorf("%w: APP_ENV %q", ErrInvalidValue, c.Env))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("%w: LOG_FORMAT %q must be text or json", ErrInvalidValue, c.LogFormat))
	}
	if c.PincodeCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: PINCODE_CACHE_SIZE must be positive", ErrInvalidValue))
	}
	if c.AttachmentMaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("%w: ATTACHMENT_MAX_BYTES must be positive", ErrInvalidValue))
	}
	for name, d := range map[string]time.Duration{
		"SUBMIT_DELAY":        c.SubmitDelay,
		"OTP_DELAY":           c.OTPDelay,
		"OTP_RESEND_COOLDOWN": c.OTPCooldown,
		"PINCODE_DELAY":       c.PincodeDelay,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative", ErrInvalidValue, name))
		}
	}
	return errors.Join(errs...)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
