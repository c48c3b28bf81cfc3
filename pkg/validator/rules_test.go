package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/validator"
)

func check(r validator.Rule) bool {
	return r.Check()
}

func TestValidMobile(t *testing.T) {
	t.Parallel()

	assert.True(t, check(validator.ValidMobile("mobile", "9876543210")))
	assert.True(t, check(validator.ValidMobile("mobile", "6000000000")))
	assert.False(t, check(validator.ValidMobile("mobile", "5876543210")), "leading digit must be 6-9")
	assert.False(t, check(validator.ValidMobile("mobile", "98765432")), "too short")
	assert.False(t, check(validator.ValidMobile("mobile", "98765432101")), "too long")
	assert.False(t, check(validator.ValidMobile("mobile", "98765 43210")))
}

func TestValidPAN(t *testing.T) {
	t.Parallel()

	assert.True(t, check(validator.ValidPAN("pan", "ABCDE1234F")))
	assert.False(t, check(validator.ValidPAN("pan", "ABCDE1234f")), "lowercase suffix")
	assert.False(t, check(validator.ValidPAN("pan", "ABCD1234F")), "four letters")
	assert.False(t, check(validator.ValidPAN("pan", "abcde1234F")))
	assert.False(t, check(validator.ValidPAN("pan", "ABCDE12345")))
}

func TestValidPincode(t *testing.T) {
	t.Parallel()

	assert.True(t, check(validator.ValidPincode("pincode", "110001")))
	assert.False(t, check(validator.ValidPincode("pincode", "11001")))
	assert.False(t, check(validator.ValidPincode("pincode", "11A001")))
	assert.False(t, check(validator.ValidPincode("pincode", "1100011")))
}

func TestValidGSTIN(t *testing.T) {
	t.Parallel()

	assert.True(t, check(validator.ValidGSTIN("gst", "27ABCDE1234F1Z5")))
	assert.True(t, check(validator.ValidGSTIN("gst", "07AAACB1234CAZX")))
	assert.False(t, check(validator.ValidGSTIN("gst", "27ABCDE1234F0Z5")), "entity code cannot be 0")
	assert.False(t, check(validator.ValidGSTIN("gst", "27ABCDE1234F1Y5")), "14th character must be Z")
	assert.False(t, check(validator.ValidGSTIN("gst", "27abcde1234F1Z5")))
	assert.False(t, check(validator.ValidGSTIN("gst", "27ABCDE1234F1Z")))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"user@example.com", true},
		{"a.b@sub.example.in", true},
		{"user@example", false},
		{"user example@example.com", false},
		{"user@@example.com", false},
		{"@example.com", false},
		{"a@b.c", true},
		{"user@.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.valid, check(validator.ValidEmail("email", tt.value)))
		})
	}
}

func TestNameRules(t *testing.T) {
	t.Parallel()

	assert.True(t, check(validator.LettersAndSpaces("name", "Ravi Kumar")))
	assert.False(t, check(validator.LettersAndSpaces("name", "Ravi K.")))
	assert.False(t, check(validator.LettersAndSpaces("name", "")))
	assert.True(t, check(validator.LettersOnly("name", "Ravi")))
	assert.False(t, check(validator.LettersOnly("name", "Ravi Kumar")))
	assert.True(t, check(validator.MinLen("name", "Al", 2)))
	assert.False(t, check(validator.MinLen("name", "A", 2)))
	assert.True(t, check(validator.Required("name", " x ")))
	assert.False(t, check(validator.Required("name", "   ")))
}

func TestDateRules(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("age in calendar years", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.AgeYearsBetween("dob", "1990-01-01", 0, 150, now)))
		assert.True(t, check(validator.AgeYearsBetween("dob", "2024-12-31", 0, 150, now)))
		assert.True(t, check(validator.AgeYearsBetween("dob", "1874-01-01", 0, 150, now)))
		assert.False(t, check(validator.AgeYearsBetween("dob", "1873-12-31", 0, 150, now)))
		assert.False(t, check(validator.AgeYearsBetween("dob", "2025-01-01", 0, 150, now)))
		assert.False(t, check(validator.AgeYearsBetween("dob", "not-a-date", 0, 150, now)))
	})

	t.Run("not after now", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(validator.NotAfter("start", "2024-06-15", now)))
		assert.True(t, check(validator.NotAfter("start", "2020-01-01", now)))
		assert.False(t, check(validator.NotAfter("start", "2024-06-16", now)))
	})

	t.Run("strictly after sibling", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(validator.StrictlyAfter("expiry", "2019-01-01", "issue", "2020-01-01")))
		assert.False(t, check(validator.StrictlyAfter("expiry", "2020-01-01", "issue", "2020-01-01")))
		assert.True(t, check(validator.StrictlyAfter("expiry", "2021-01-01", "issue", "2020-01-01")))
		assert.True(t, check(validator.StrictlyAfter("expiry", "2021-01-01", "issue", "")))
	})

	t.Run("parse date", func(t *testing.T) {
		t.Parallel()
		d, err := validator.ParseDate("2020-02-29")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), d)

		_, err = validator.ParseDate("2021-02-29")
		assert.ErrorIs(t, err, validator.ErrInvalidDate)
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first failing rule", func(t *testing.T) {
		t.Parallel()
		err := validator.First(
			validator.Required("aadhaar", "12ab").WithMessage("Aadhaar number is required"),
			validator.ValidAadhaarFormat("aadhaar", "12ab"),
			validator.ValidAadhaarChecksum("aadhaar", "12ab"),
		)
		require.NotNil(t, err)
		assert.Equal(t, "Aadhaar must be 12 digits", err.Message)
		assert.Equal(t, validator.KindFormat, err.Kind)
	})

	t.Run("reports checksum as semantic", func(t *testing.T) {
		t.Parallel()
		err := validator.First(
			validator.ValidAadhaarFormat("aadhaar", "234567890122"),
			validator.ValidAadhaarChecksum("aadhaar", "234567890122"),
		)
		require.NotNil(t, err)
		assert.Equal(t, "Invalid Aadhaar number", err.Message)
		assert.Equal(t, validator.KindSemantic, err.Kind)
	})

	t.Run("nil when all pass", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.First(validator.ValidMobile("m", "9876543210")))
	})

	t.Run("optional skips blank values", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.First(validator.Optional("", validator.ValidPAN("pan", ""))...))
		assert.NotNil(t, validator.First(validator.Optional("x", validator.ValidPAN("pan", "x"))...))
	})
}
