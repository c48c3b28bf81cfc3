package forms

import (
	"fmt"
	"strings"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/validator"
)

// Field names shared between forms and the session controller.
const (
	FieldPincode       = "pincode"
	FieldCity          = "city"
	FieldDistrict      = "district"
	FieldState         = "state"
	FieldPrimaryMobile = "primaryMobile"
	FieldOTP           = "otp"
	FieldOTPSent       = "otpSent"
	FieldFiles         = "files"
)

var registry = []*Form{Identity, Tax, Address, Business, Contact, Document}

// All returns every registered form in menu order.
func All() []*Form {
	out := make([]*Form, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a form by ID or alias, case-insensitively.
func Lookup(id string) (*Form, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, f := range registry {
		if f.ID == key {
			return f, nil
		}
		for _, a := range f.Aliases {
			if a == key {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownForm, id)
}

// ValidateChecksum reports whether s is a 12-digit identity number with a
// valid Verhoeff check digit.
func ValidateChecksum(s string) bool {
	return validator.VerhoeffValid(s)
}

// ValidateField validates one field of the form identified by formID.
func ValidateField(formID, name string, v Value, siblings Values) (string, error) {
	f, err := Lookup(formID)
	if err != nil {
		return "", err
	}
	return f.ValidateField(name, v, siblings), nil
}

// ValidateAll validates a whole record against the form identified by formID.
func ValidateAll(formID string, values Values, optional ...string) (Errors, error) {
	f, err := Lookup(formID)
	if err != nil {
		return nil, err
	}
	return f.ValidateAll(values, optional...), nil
}

// Check validates values against f and returns a *ValidationError when any
// field fails.
func Check(f *Form, values Values, optional ...string) error {
	errs := f.ValidateAll(values, optional...)
	if errs.IsEmpty() {
		return nil
	}
	return &ValidationError{Form: f.ID, Errors: errs}
}
