package forms

import (
	"time"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/validator"
)

// Input is what a field rule sees: the value under test, the rest of the
// record and the reference time for date rules.
type Input struct {
	Field    string
	Value    Value
	Siblings Values
	Now      time.Time
}

// Text is shorthand for the text payload of the value under test.
func (in Input) Text() string {
	return in.Value.Text()
}

// FieldRule builds the ordered rules for one field. The first failing rule
// decides the field's message.
type FieldRule func(in Input) []validator.Rule

// Field describes one input of a form.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Optional bool
	Choices  []string
	Rule     FieldRule
}

// Zero returns the empty value of the field's kind.
func (f Field) Zero() Value {
	if f.Kind == KindFlag {
		return Flag(false)
	}
	return Text("")
}

// Status is the visual state of a field.
type Status string

const (
	StatusNone    Status = "none"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

// Form is an immutable field-rule table. Forms are safe for concurrent use.
type Form struct {
	ID      string
	Title   string
	Aliases []string
	Fields  []Field

	// RequiresAttachments marks forms that cannot be submitted without at
	// least one uploaded file, reported under FieldFiles.
	RequiresAttachments bool
	// RequiresVerification marks forms whose primary mobile must pass OTP
	// verification before submission.
	RequiresVerification bool
	// PincodeLookup marks forms whose city, district and state are filled
	// from a resolved PIN code.
	PincodeLookup bool

	index map[string]int
	now   func() time.Time
}

func newForm(id, title string, aliases []string, fields ...Field) *Form {
	f := &Form{
		ID:      id,
		Title:   title,
		Aliases: aliases,
		Fields:  fields,
		index:   make(map[string]int, len(fields)),
		now:     time.Now,
	}
	for i, fd := range fields {
		f.index[fd.Name] = i
	}
	return f
}

func (f *Form) withAttachments() *Form {
	f.RequiresAttachments = true
	return f
}

func (f *Form) withVerification() *Form {
	f.RequiresVerification = true
	return f
}

func (f *Form) withPincodeLookup() *Form {
	f.PincodeLookup = true
	return f
}

// HasField reports whether the form declares name.
func (f *Form) HasField(name string) bool {
	_, ok := f.index[name]
	return ok
}

// WithClock returns a copy of the form whose date rules use now as the
// current time.
func (f *Form) WithClock(now func() time.Time) *Form {
	cp := *f
	cp.now = now
	return &cp
}

// Field returns the named field.
func (f *Form) Field(name string) (Field, bool) {
	i, ok := f.index[name]
	if !ok {
		return Field{}, false
	}
	return f.Fields[i], true
}

// FieldNames returns field names in declaration order.
func (f *Form) FieldNames() []string {
	names := make([]string, len(f.Fields))
	for i, fd := range f.Fields {
		names[i] = fd.Name
	}
	return names
}

// OptionalFields returns the names of fields that may be left blank.
func (f *Form) OptionalFields() []string {
	var names []string
	for _, fd := range f.Fields {
		if fd.Optional {
			names = append(names, fd.Name)
		}
	}
	return names
}

// ValidateField returns the error message for one field, or "" when it is
// valid. Unknown field names are valid. A value of the wrong variant yields
// MsgInvalidType.
func (f *Form) ValidateField(name string, v Value, siblings Values) string {
	fd, ok := f.Field(name)
	if !ok || fd.Rule == nil {
		return ""
	}
	if v.Kind() == KindNone {
		v = fd.Zero()
	}
	if v.Kind() != fd.Kind {
		return MsgInvalidType
	}

	in := Input{
		Field:    name,
		Value:    v,
		Siblings: siblings,
		Now:      f.now().UTC(),
	}
	if err := validator.First(fd.Rule(in)...); err != nil {
		return err.Message
	}
	return ""
}

// ValidateAll validates every field of the form and returns a fresh error
// map. Fields declared optional, plus any names passed in optional, are
// skipped while blank and validated once they carry a value.
func (f *Form) ValidateAll(values Values, optional ...string) Errors {
	skip := make(map[string]bool, len(optional))
	for _, name := range optional {
		skip[name] = true
	}

	errs := make(Errors)
	for _, fd := range f.Fields {
		v, ok := values[fd.Name]
		if !ok || v.Kind() == KindNone {
			v = fd.Zero()
		}
		if (fd.Optional || skip[fd.Name]) && v.IsBlank() {
			continue
		}
		if msg := f.ValidateField(fd.Name, v, values); msg != "" {
			errs[fd.Name] = msg
		}
	}
	return errs
}

// Status reports how a field should be rendered: none while it is empty,
// error when errs holds a message for it, success otherwise.
func (f *Form) Status(name string, v Value, errs Errors) Status {
	if v.IsBlank() {
		return StatusNone
	}
	if errs.Has(name) {
		return StatusError
	}
	return StatusSuccess
}
