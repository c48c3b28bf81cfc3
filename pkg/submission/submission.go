// Package submission delivers validated form records. The portal has no
// backend, so the only shipped Transport is Simulated, which waits a moment
// and acknowledges everything.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/forms"
)

var (
	// ErrTransport wraps failures to reach the receiving side.
	ErrTransport = errors.New("submission transport failed")
	// ErrRejected marks a record the receiving side refused.
	ErrRejected = errors.New("submission rejected")
)

// Envelope is one submitted record.
type Envelope struct {
	ID          uuid.UUID
	Form        string
	Values      forms.Values
	Attachments []string
	CreatedAt   time.Time
}

// NewEnvelope builds an envelope with a fresh ID. The record is copied.
func NewEnvelope(form string, values forms.Values, attachments ...string) Envelope {
	return Envelope{
		ID:          uuid.New(),
		Form:        form,
		Values:      values.Clone(),
		Attachments: attachments,
		CreatedAt:   time.Now(),
	}
}

// Ack confirms receipt of an envelope.
type Ack struct {
	EnvelopeID uuid.UUID
	Reference  string
	ReceivedAt time.Time
}

// Transport delivers envelopes.
type Transport interface {
	Submit(ctx context.Context, env Envelope) (Ack, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, env Envelope) (Ack, error)

func (f TransportFunc) Submit(ctx context.Context, env Envelope) (Ack, error) {
	return f(ctx, env)
}

// RejectionError carries the receiving side's reason for refusing a record.
type RejectionError struct {
	Reason string
	Fields forms.Errors
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}

// Reference formats a human-readable acknowledgement number such as
// "IDENTITY-3F2A9C1B".
func Reference(form string, id uuid.UUID) string {
	return strings.ToUpper(form) + "-" + strings.ToUpper(id.String()[:8])
}
