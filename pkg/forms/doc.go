// Package forms holds the declarative field-rule tables of the six portal
// forms and the engine that evaluates them.
//
// Each Form is an ordered list of Field entries. A field declares the kind of
// Value it accepts (text or flag), whether it may be left blank, its select
// choices and a FieldRule that yields ordered validator rules. The first
// failing rule decides the message shown for the field.
//
// # Usage
//
//	f, err := forms.Lookup("identity")
//	if err != nil {
//		return err
//	}
//
//	msg := f.ValidateField("mobile", forms.Text("98765"), nil)
//	// msg == "Enter valid 10-digit mobile number starting with 6-9"
//
//	errs := f.ValidateAll(record)
//	if !errs.IsEmpty() {
//		for _, name := range errs.Fields() {
//			fmt.Println(name, errs[name])
//		}
//	}
//
// Forms are immutable and safe for concurrent use. WithClock returns a copy
// bound to a fixed clock for deterministic date checks.
//
// # Optional fields
//
// Optional fields are skipped by ValidateAll while blank and validated like
// any other field once they carry a value. Callers may mark further fields
// optional per call.
package forms
