package validator

// DiffersFrom fails when value equals the sibling value it is compared with.
func DiffersFrom(field, value, otherField, other string) Rule {
	return Rule{
		Check: func() bool {
			return value != other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be different from " + otherField,
			Kind:           KindSemantic,
			TranslationKey: "validation.differs_from",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

// StrictlyAfter requires the date in value to be later than the date in
// other. When either side is not a valid date there is nothing to order and
// the rule passes.
func StrictlyAfter(field, value, otherField, other string) Rule {
	return Rule{
		Check: func() bool {
			t, err := ParseDate(value)
			if err != nil {
				return true
			}
			ref, err := ParseDate(other)
			if err != nil {
				return true
			}
			return t.After(ref)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "date must be after " + otherField,
			Kind:           KindRange,
			TranslationKey: "validation.date_after_field",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}
