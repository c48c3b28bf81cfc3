package forms

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownForm  = errors.New("unknown form")
	ErrUnknownField = errors.New("unknown field")
)

// MsgInvalidType is reported when a field receives the wrong Value variant.
const MsgInvalidType = "invalid value type"

// Errors maps field names to their current error message. A missing key or an
// empty message means the field is valid.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	return e[field] != ""
}

func (e Errors) Get(field string) string {
	return e[field]
}

// Fields returns the names of fields with a non-empty message, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for k, v := range e {
		if v != "" {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e.Fields()) == 0
}

// Merge returns a new map holding e overlaid with other. Empty messages in
// other clear the field. Neither input is modified.
func (e Errors) Merge(other Errors) Errors {
	out := make(Errors, len(e)+len(other))
	for k, v := range e {
		if v != "" {
			out[k] = v
		}
	}
	for k, v := range other {
		if v == "" {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// ValidationError is returned when a whole-form validation finds problems.
type ValidationError struct {
	Form   string
	Errors Errors
}

func (e *ValidationError) Error() string {
	fields := e.Errors.Fields()
	if len(fields) == 0 {
		return fmt.Sprintf("%s: validation failed", e.Form)
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Errors[f])
	}
	return fmt.Sprintf("%s: validation failed: %s", e.Form, strings.Join(parts, "; "))
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
