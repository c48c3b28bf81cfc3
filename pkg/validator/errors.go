package validator

import "errors"

var (
	// ErrInvalidChecksumInput is returned when a Verhoeff computation receives
	// a value of the wrong length or with non-digit characters.
	ErrInvalidChecksumInput = errors.New("checksum input must be ASCII digits of the expected length")

	// ErrInvalidDate is returned when a date string is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date")
)
