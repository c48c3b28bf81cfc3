// Package validator provides the rule primitives used to validate registration
// form fields: required text, name-like text, mobile numbers, e-mail addresses,
// PIN codes, PAN and GSTIN identifiers, ISO dates, consent flags and the
// Verhoeff check digit of 12-digit Aadhaar numbers.
//
// A Rule pairs a boolean Check function with the ValidationError that is
// reported when the check fails. First evaluates rules in order and stops at
// the first failure, the way a form reports a single message per field.
// Optional drops a field's rules while its value is blank.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `identifier_rules.go`, `date_rules.go`, `flag_rules.go`,
// `cross_field_rules.go`). Every exported rule constructor returns a Rule and
// touches no shared state, so the package is stateless and goroutine-safe.
// Date rules that depend on "today" take the reference time as an argument.
//
// # Usage
//
//	rule := validator.First(
//	    validator.Required("mobile", mobile).WithMessage("Mobile number is required"),
//	    validator.ValidMobile("mobile", mobile),
//	)
//	if rule != nil {
//	    fmt.Println(rule.Message)
//	}
//
// # Error Kinds
//
// Every ValidationError carries a Kind: KindRequired, KindFormat, KindRange or
// KindSemantic. The checksum rule reports KindSemantic and is only reached when
// the 12-digit format rule has passed.
package validator
