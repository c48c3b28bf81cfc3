package validator

import (
	"fmt"
	"strings"
)

// Kind classifies why a value was rejected.
type Kind string

const (
	KindRequired Kind = "required"
	KindFormat   Kind = "format"
	KindRange    Kind = "range"
	KindSemantic Kind = "semantic"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	Kind              Kind
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting msg instead of its default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// First evaluates rules in order and returns the error of the first failing
// rule, or nil when all pass. Later rules are not evaluated.
func First(rules ...Rule) *ValidationError {
	for _, rule := range rules {
		if !rule.Check() {
			err := rule.Error
			return &err
		}
	}
	return nil
}

// Optional wraps rules so they are skipped when value is blank.
func Optional(value string, rules ...Rule) []Rule {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return rules
}
