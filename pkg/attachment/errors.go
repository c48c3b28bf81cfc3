package attachment

import (
	"errors"
	"strings"
)

var (
	ErrTooLarge        = errors.New("attachment exceeds size limit")
	ErrUnsupportedType = errors.New("attachment type not allowed")
	ErrNone            = errors.New("no attachments")
	ErrNotFound        = errors.New("attachment not found")

	ErrFailedToOpenFile = errors.New("failed to open file")
	ErrFailedToReadFile = errors.New("failed to read file")
)

// Messages shown to the user for the upload errors. MsgTooLarge matches
// DefaultPolicy; Policy.Message reports the policy's own ceiling.
const (
	MsgTooLarge        = "File size should be less than 5MB"
	MsgUnsupportedType = "Please upload JPG, PNG, or PDF files only"
	MsgNone            = "Please upload at least one document"
)

// Message maps an upload error to the text shown next to the upload field
// under DefaultPolicy. Errors that are not upload rule violations map to "".
func Message(err error) string {
	return DefaultPolicy().Message(err)
}

// Message maps an upload error to the text shown next to the upload field.
// Errors that are not upload rule violations map to "".
func (p Policy) Message(err error) string {
	switch {
	case errors.Is(err, ErrTooLarge):
		return "File size should be less than " + p.limit()
	case errors.Is(err, ErrUnsupportedType):
		return MsgUnsupportedType
	case errors.Is(err, ErrNone):
		return MsgNone
	default:
		return ""
	}
}

// Describe summarises the policy for upload prompts, e.g.
// "JPG, PNG or PDF up to 5MB".
func (p Policy) Describe() string {
	if p.MaxBytes <= 0 {
		return "JPG, PNG or PDF"
	}
	return "JPG, PNG or PDF up to " + p.limit()
}

// limit renders MaxBytes the way the portal writes it ("5MB").
func (p Policy) limit() string {
	return strings.Replace(FormatSize(p.MaxBytes), " ", "", 1)
}
