package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	lettersAndSpacesRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	lettersOnlyRegex      = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "This field is required",
			Kind:           KindRequired,
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen counts characters of the raw value, surrounding spaces included.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters", min),
			Kind:           KindRange,
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// LettersAndSpaces accepts ASCII letters and whitespace only.
func LettersAndSpaces(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lettersAndSpacesRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Only letters and spaces allowed",
			Kind:           KindFormat,
			TranslationKey: "validation.letters_spaces",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func LettersOnly(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lettersOnlyRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Only letters allowed",
			Kind:           KindFormat,
			TranslationKey: "validation.letters",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
