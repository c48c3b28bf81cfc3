package forms

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells which variant a Value carries.
type Kind uint8

const (
	// KindNone is the zero Value: no input was given for the field.
	KindNone Kind = iota
	KindText
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFlag:
		return "flag"
	default:
		return "none"
	}
}

// Value is a single field value: either free text or a boolean flag.
// The zero Value stands for a field the user has not touched and is treated
// as the empty value of whatever kind the field declares.
type Value struct {
	kind Kind
	text string
	flag bool
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Flag returns a boolean value.
func Flag(b bool) Value {
	return Value{kind: KindFlag, flag: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the text payload, or "" for flags.
func (v Value) Text() string {
	return v.text
}

// Flag returns the flag payload, or false for text.
func (v Value) Flag() bool {
	return v.flag
}

// IsBlank reports whether the value carries no user input: an absent value,
// whitespace-only text or an unticked flag.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindFlag:
		return !v.flag
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindFlag:
		return strconv.FormatBool(v.flag)
	default:
		return ""
	}
}

// Values is a form record keyed by field name.
type Values map[string]Value

// Text returns the text of the named field, or "" when it is absent or a flag.
func (vs Values) Text(name string) string {
	return vs[name].Text()
}

// Flag returns the flag of the named field, or false when it is absent or text.
func (vs Values) Flag(name string) bool {
	return vs[name].Flag()
}

// Clone returns an independent copy of the record.
func (vs Values) Clone() Values {
	out := make(Values, len(vs))
	for k, v := range vs {
		out[k] = v
	}
	return out
}

// With returns a copy of the record with name set to v.
func (vs Values) With(name string, v Value) Values {
	out := vs.Clone()
	out[name] = v
	return out
}

// FromAny converts decoded YAML or JSON data into a record. Booleans become
// flags, everything else is formatted as text. Nil entries are skipped.
func FromAny(raw map[string]any) Values {
	out := make(Values, len(raw))
	for k, v := range raw {
		switch x := v.(type) {
		case nil:
			continue
		case bool:
			out[k] = Flag(x)
		case string:
			out[k] = Text(x)
		case int:
			out[k] = Text(strconv.Itoa(x))
		case int64:
			out[k] = Text(strconv.FormatInt(x, 10))
		case uint64:
			out[k] = Text(strconv.FormatUint(x, 10))
		case float64:
			out[k] = Text(strconv.FormatFloat(x, 'f', -1, 64))
		default:
			out[k] = Text(fmt.Sprint(x))
		}
	}
	return out
}
