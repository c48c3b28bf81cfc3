package validator

import "regexp"

var (
	mobileRegex  = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	otpRegex     = regexp.MustCompile(`^\d{6}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinRegex   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// ValidMobile validates a 10-digit Indian mobile number starting with 6-9.
func ValidMobile(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return mobileRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Enter valid 10-digit mobile number",
			Kind:           KindFormat,
			TranslationKey: "validation.mobile",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail is a structural check: one @, no whitespace, a dot in the domain.
// It does not attempt RFC 5322.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Enter a valid email",
			Kind:           KindFormat,
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidPincode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return pincodeRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "PIN code must be 6 digits",
			Kind:           KindFormat,
			TranslationKey: "validation.pincode",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidOTP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return otpRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "OTP must be 6 digits",
			Kind:           KindFormat,
			TranslationKey: "validation.otp",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidAadhaarFormat checks the 12-digit shape only. Pair it with
// ValidAadhaarChecksum through First so the checksum never sees malformed input.
func ValidAadhaarFormat(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return aadhaarRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Aadhaar must be 12 digits",
			Kind:           KindFormat,
			TranslationKey: "validation.aadhaar_format",
			TranslationValues: map[string]any{
				"field":  field,
				"length": AadhaarLength,
			},
		},
	}
}

func ValidAadhaarChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return VerhoeffValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid Aadhaar number",
			Kind:           KindSemantic,
			TranslationKey: "validation.aadhaar_checksum",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPAN validates the income-tax permanent account number shape AAAAA9999A.
// Lowercase letters are rejected.
func ValidPAN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return panRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid PAN format (e.g., ABCDE1234F)",
			Kind:           KindFormat,
			TranslationKey: "validation.pan",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidGSTIN validates the 15-character GST identification number: state code,
// embedded PAN, entity number, literal Z and a trailing check character.
func ValidGSTIN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return gstinRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid GST number format",
			Kind:           KindFormat,
			TranslationKey: "validation.gstin",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
