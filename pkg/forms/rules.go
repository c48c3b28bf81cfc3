package forms

import (
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/validator"
)

// Age bounds for date-of-birth fields, in calendar years.
const (
	MinAge = 0
	MaxAge = 150
)

func chain(rules ...FieldRule) FieldRule {
	return func(in Input) []validator.Rule {
		var out []validator.Rule
		for _, r := range rules {
			out = append(out, r(in)...)
		}
		return out
	}
}

// optional runs rules only when the text value is not blank.
func optional(rules ...FieldRule) FieldRule {
	inner := chain(rules...)
	return func(in Input) []validator.Rule {
		return validator.Optional(in.Text(), inner(in)...)
	}
}

func required(msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.Required(in.Field, in.Text()).WithMessage(msg)}
	}
}

func minLen(n int, msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.MinLen(in.Field, in.Text(), n).WithMessage(msg)}
	}
}

func lettersAndSpaces() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.LettersAndSpaces(in.Field, in.Text())}
	}
}

func lettersOnly() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.LettersOnly(in.Field, in.Text())}
	}
}

func mobile(msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidMobile(in.Field, in.Text()).WithMessage(msg)}
	}
}

func email(msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidEmail(in.Field, in.Text()).WithMessage(msg)}
	}
}

func pincodeFormat() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidPincode(in.Field, in.Text())}
	}
}

func aadhaarFormat() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidAadhaarFormat(in.Field, in.Text())}
	}
}

func aadhaarChecksum() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidAadhaarChecksum(in.Field, in.Text())}
	}
}

func pan() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidPAN(in.Field, in.Text())}
	}
}

func gstin() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidGSTIN(in.Field, in.Text())}
	}
}

func birthDate(msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{
			validator.AgeYearsBetween(in.Field, in.Text(), MinAge, MaxAge, in.Now).WithMessage(msg),
		}
	}
}

// pastDate accepts a valid date that is not later than now.
func pastDate(futureMsg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{
			validator.ValidDate(in.Field, in.Text()),
			validator.NotAfter(in.Field, in.Text(), in.Now).WithMessage(futureMsg),
		}
	}
}

func after(other, msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{
			validator.ValidDate(in.Field, in.Text()),
			validator.StrictlyAfter(in.Field, in.Text(), other, in.Siblings.Text(other)).WithMessage(msg),
		}
	}
}

func differsFrom(other, msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{
			validator.DiffersFrom(in.Field, in.Text(), other, in.Siblings.Text(other)).WithMessage(msg),
		}
	}
}

func accepted(msg string) FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.Accepted(in.Field, in.Value.Flag()).WithMessage(msg)}
	}
}

// when applies then if the named sibling flag is set and otherwise.
func when(flag string, then, otherwise FieldRule) FieldRule {
	return func(in Input) []validator.Rule {
		if in.Siblings.Flag(flag) {
			return then(in)
		}
		return otherwise(in)
	}
}

func text(name, label string, rule FieldRule, choices ...string) Field {
	return Field{Name: name, Label: label, Kind: KindText, Rule: rule, Choices: choices}
}

func optionalText(name, label string, rule FieldRule) Field {
	return Field{Name: name, Label: label, Kind: KindText, Optional: true, Rule: optional(rule)}
}

func flag(name, label string, rule FieldRule) Field {
	return Field{Name: name, Label: label, Kind: KindFlag, Rule: rule}
}

func otpFormat() FieldRule {
	return func(in Input) []validator.Rule {
		return []validator.Rule{validator.ValidOTP(in.Field, in.Text())}
	}
}
