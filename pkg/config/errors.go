package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when the default .env file exists but is malformed.
	ErrLoadingEnvFile = errors.New("failed to load .env file")

	// ErrInvalidValue is returned by App.Validate for settings that parse but make no sense.
	ErrInvalidValue = errors.New("invalid configuration value")
)
