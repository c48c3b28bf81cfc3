package validator

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used by every date field.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO YYYY-MM-DD date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ParseDate(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid date",
			Kind:           KindFormat,
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field":  field,
				"layout": DateLayout,
			},
		},
	}
}

// AgeYearsBetween checks the calendar-year difference between now and the
// birth date. Month and day are ignored, so a person born in December counts
// as one year old in January.
func AgeYearsBetween(field, value string, minAge, maxAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			birth, err := ParseDate(value)
			if err != nil {
				return false
			}
			age := now.Year() - birth.Year()
			return age >= minAge && age <= maxAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Please enter a valid date of birth",
			Kind:           KindRange,
			TranslationKey: "validation.age_between",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
				"max_age": maxAge,
			},
		},
	}
}

// NotAfter rejects dates later than now. Unparseable values pass; pair with
// ValidDate to report them.
func NotAfter(field, value string, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			t, err := ParseDate(value)
			if err != nil {
				return true
			}
			return !t.After(now)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date cannot be in future",
			Kind:           KindRange,
			TranslationKey: "validation.date_not_future",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
