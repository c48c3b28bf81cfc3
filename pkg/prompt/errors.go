package prompt

import "errors"

var (
	// ErrAborted signals the user interrupted input (Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned when OTP verification keeps failing.
	ErrTooManyAttempts = errors.New("prompt: too many attempts")
	// ErrCancelled is returned when the user declines the final submit.
	ErrCancelled = errors.New("prompt: submission cancelled")
)
