// Package session drives one user's pass through a form: it keeps the
// record and its error map, runs field rules as values change, and walks the
// editing -> submitting -> submitted lifecycle around an injected transport.
// The OTP, PIN code and attachment flows of the contact, address and
// document forms live here too, so any front end gets them for free.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/attachment"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/forms"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/logger"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/otp"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/pincode"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/submission"
)

// Session is safe for concurrent use. Blocking calls (OTP, PIN lookup,
// submission) run without holding the session lock.
type Session struct {
	id        string
	form      *forms.Form
	transport submission.Transport
	otp       otp.Service
	resolver  pincode.Resolver
	log       *slog.Logger
	lifecycle *lifecycle
	files     *attachment.Set

	mu          sync.Mutex
	values      forms.Values
	errs        forms.Errors
	otpSent     bool
	otpVerified bool
	lastAck     *submission.Ack
}

// Option configures a Session.
type Option func(*Session)

func WithTransport(t submission.Transport) Option {
	return func(s *Session) {
		if t != nil {
			s.transport = t
		}
	}
}

func WithOTP(svc otp.Service) Option {
	return func(s *Session) {
		if svc != nil {
			s.otp = svc
		}
	}
}

func WithResolver(r pincode.Resolver) Option {
	return func(s *Session) {
		if r != nil {
			s.resolver = r
		}
	}
}

func WithAttachmentPolicy(p attachment.Policy) Option {
	return func(s *Session) {
		s.files = attachment.NewSet(p)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock binds the form's date rules to now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.form = s.form.WithClock(now)
		}
	}
}

// New starts an editing session for form. Without options it submits through
// an instant simulated transport, accepts the demo OTP "123456" and resolves
// PIN codes from the built-in table.
func New(form *forms.Form, opts ...Option) *Session {
	s := &Session{
		id:        uuid.NewString(),
		form:      form,
		transport: submission.NewSimulated(0),
		otp:       otp.NewSimulated(otp.WithDemoCode("123456")),
		resolver:  pincode.Static(),
		log:       logger.Discard(),
		lifecycle: newLifecycle(),
		files:     attachment.NewSet(attachment.DefaultPolicy()),
		values:    make(forms.Values),
		errs:      make(forms.Errors),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("session"), logger.Form(form.ID))
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Form() *forms.Form {
	return s.form
}

func (s *Session) State() State {
	return s.lifecycle.Current()
}

// Values returns a copy of the current record.
func (s *Session) Values() forms.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Clone()
}

// Errors returns a copy of the current error map.
func (s *Session) Errors() forms.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs.Merge(nil)
}

// LastAck returns the acknowledgement of the most recent successful submit.
func (s *Session) LastAck() (submission.Ack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastAck == nil {
		return submission.Ack{}, false
	}
	return *s.lastAck, true
}

func (s *Session) ctx(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.id)
}

// siblings returns the record as field rules see it. Must be called with lock held.
func (s *Session) siblings() forms.Values {
	return s.values.With(forms.FieldOTPSent, forms.Flag(s.otpSent))
}

// Change stores v under name, re-runs that field's rules against the rest of
// the record and returns the resulting message ("" when valid). Only the
// changed field's error entry is touched.
func (s *Session) Change(name string, v forms.Value) (string, error) {
	if s.State() != StateEditing {
		return "", fmt.Errorf("%w: %s", ErrInvalidState, s.State())
	}
	if !s.form.HasField(name) {
		return "", fmt.Errorf("%w: %s.%s", forms.ErrUnknownField, s.form.ID, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if name == forms.FieldPrimaryMobile && s.values.Text(name) != v.Text() {
		s.otpSent, s.otpVerified = false, false
	}
	s.values[name] = v
	msg := s.form.ValidateField(name, v, s.siblings())
	s.errs = s.errs.Merge(forms.Errors{name: msg})

	s.log.Debug("field changed", logger.Field(name), slog.Bool("valid", msg == ""))
	return msg, nil
}

// Check runs name's rules against v and the current record without storing
// anything.
func (s *Session) Check(name string, v forms.Value) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.ValidateField(name, v, s.siblings())
}

// Status reports how a field should be rendered.
func (s *Session) Status(name string) forms.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Status(name, s.values[name], s.errs)
}

// Validate runs every rule without submitting and stores the result.
func (s *Session) Validate() forms.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errs = s.validateLocked()
	return s.errs.Merge(nil)
}

// Must be called with lock held.
func (s *Session) validateLocked() forms.Errors {
	errs := s.form.ValidateAll(s.siblings())
	if s.form.RequiresAttachments {
		errs = errs.Merge(forms.Errors{forms.FieldFiles: s.files.Policy().Message(s.files.RequireAny())})
	}
	return errs
}

// Submit validates the whole record and hands it to the transport. On
// validation failure it returns a *forms.ValidationError and stays in
// editing. On transport failure it returns to editing with an error wrapping
// submission.ErrTransport or submission.ErrRejected. On success the session
// moves to submitted and its record is cleared.
func (s *Session) Submit(ctx context.Context) (submission.Ack, error) {
	ctx = s.ctx(ctx)
	if !s.lifecycle.can(eventSubmit) {
		return submission.Ack{}, fmt.Errorf("%w: %s", ErrInvalidState, s.State())
	}

	s.mu.Lock()
	if s.form.RequiresVerification && !s.otpVerified {
		s.mu.Unlock()
		s.log.InfoContext(ctx, "submit blocked", slog.String("reason", MsgVerifyFirst))
		return submission.Ack{}, ErrVerificationRequired
	}

	errs := s.validateLocked()
	s.errs = errs
	if !errs.IsEmpty() {
		s.mu.Unlock()
		s.log.InfoContext(ctx, "submit blocked by validation", logger.FieldErrors(errs))
		return submission.Ack{}, &forms.ValidationError{Form: s.form.ID, Errors: errs.Merge(nil)}
	}

	if _, err := s.lifecycle.fire(eventSubmit); err != nil {
		s.mu.Unlock()
		return submission.Ack{}, err
	}
	env := submission.NewEnvelope(s.form.ID, s.values, s.files.Names()...)
	s.mu.Unlock()

	s.log.InfoContext(ctx, "submitting", logger.State(string(StateSubmitting)), slog.String("envelope_id", env.ID.String()))

	ack, err := s.transport.Submit(ctx, env)
	if err != nil {
		return submission.Ack{}, s.fail(ctx, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lifecycle.fire(eventAccept); err != nil {
		return submission.Ack{}, err
	}
	s.lastAck = &ack
	s.clearLocked()

	s.log.InfoContext(ctx, "submitted", logger.State(string(StateSubmitted)), logger.AckRef(ack.Reference))
	return ack, nil
}

func (s *Session) fail(ctx context.Context, err error) error {
	if !errors.Is(err, submission.ErrTransport) && !errors.Is(err, submission.ErrRejected) {
		err = fmt.Errorf("%w: %w", submission.ErrTransport, err)
	}

	s.mu.Lock()
	var rej *submission.RejectionError
	if errors.As(err, &rej) && len(rej.Fields) > 0 {
		s.errs = s.errs.Merge(rej.Fields)
	}
	s.mu.Unlock()

	if _, ferr := s.lifecycle.fire(eventFail); ferr != nil {
		return errors.Join(err, ferr)
	}
	s.log.WarnContext(ctx, "submission failed", logger.State(string(StateEditing)), logger.Error(err))
	return err
}

// Reset clears the record and returns a submitted session to editing.
func (s *Session) Reset() error {
	if _, err := s.lifecycle.fire(eventReset); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	return nil
}

// Must be called with lock held.
func (s *Session) clearLocked() {
	s.values = make(forms.Values)
	s.errs = make(forms.Errors)
	s.otpSent, s.otpVerified = false, false
	s.files.Clear()
}
