package otp

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrCooldown    = errors.New("otp resend cooldown active")
	ErrNotSent     = errors.New("otp not sent")
	ErrInvalidCode = errors.New("invalid otp code")
)

// CooldownError reports how long the caller must wait before resending.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: wait %ds", ErrCooldown, e.Seconds())
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldown
}

// Seconds returns the remaining wait rounded up to whole seconds.
func (e *CooldownError) Seconds() int {
	return int(math.Ceil(e.Remaining.Seconds()))
}
