package logger

import (
	"log/slog"
	"slices"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Form(id string) slog.Attr {
	return slog.String("form", id)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// State records a session lifecycle state under the key "state".
func State(s string) slog.Attr {
	return slog.String("state", s)
}

// AckRef records a submission acknowledgement reference under the key "ack_ref".
func AckRef(ref string) slog.Attr {
	return slog.String("ack_ref", ref)
}

// FieldErrors groups per-field validation messages under the key
// "field_errors", or returns an empty Attr when there are none.
func FieldErrors(errs map[string]string) slog.Attr {
	keys := make([]string, 0, len(errs))
	for k, v := range errs {
		if v != "" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	as := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		as = append(as, slog.String(k, errs[k]))
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "field_errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
