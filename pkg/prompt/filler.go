// Package prompt fills a form interactively. Each field is asked in
// declaration order and checked with the same rules the session enforces,
// then the record is submitted through the session.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/attachment"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/forms"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/logger"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/otp"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/pincode"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/session"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/submission"
)

const defaultOTPAttempts = 3

// Filler walks a session's form through a Driver.
type Filler struct {
	driver      Driver
	log         *slog.Logger
	otpAttempts int
	confirm     bool
}

// Option configures a Filler.
type Option func(*Filler)

func WithLogger(l *slog.Logger) Option {
	return func(f *Filler) {
		if l != nil {
			f.log = l
		}
	}
}

// WithOTPAttempts caps how many wrong codes are accepted before giving up.
func WithOTPAttempts(n int) Option {
	return func(f *Filler) {
		if n > 0 {
			f.otpAttempts = n
		}
	}
}

// WithConfirm toggles the final "submit?" question.
func WithConfirm(confirm bool) Option {
	return func(f *Filler) {
		f.confirm = confirm
	}
}

func NewFiller(d Driver, opts ...Option) *Filler {
	f := &Filler{
		driver:      d,
		log:         logger.Discard(),
		otpAttempts: defaultOTPAttempts,
		confirm:     true,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("prompt"))
	return f
}

// Fill asks every field of s's form, runs the OTP and upload steps the form
// needs and submits. Prompt errors (including ErrAborted) are returned as is.
func (f *Filler) Fill(ctx context.Context, s *session.Session) (submission.Ack, error) {
	form := s.Form()
	if err := f.driver.Info(ctx, form.Title); err != nil {
		return submission.Ack{}, err
	}

	autofilled := map[string]bool{}
	for _, field := range form.Fields {
		switch {
		case field.Name == forms.FieldOTP && form.RequiresVerification:
			continue
		case autofilled[field.Name]:
			continue
		}

		if err := f.askField(ctx, s, field); err != nil {
			return submission.Ack{}, err
		}

		if field.Name == forms.FieldPincode && form.PincodeLookup {
			filled, err := f.lookupPincode(ctx, s)
			if err != nil {
				return submission.Ack{}, err
			}
			for _, name := range filled {
				autofilled[name] = true
			}
		}
	}

	if form.RequiresVerification {
		if err := f.verifyMobile(ctx, s); err != nil {
			return submission.Ack{}, err
		}
	}
	if form.RequiresAttachments {
		if err := f.collectFiles(ctx, s); err != nil {
			return submission.Ack{}, err
		}
	}
	return f.submit(ctx, s)
}

func (f *Filler) askField(ctx context.Context, s *session.Session, field forms.Field) error {
	for {
		v, err := f.ask(ctx, s, field)
		if err != nil {
			return err
		}
		msg, err := s.Change(field.Name, v)
		if err != nil {
			return err
		}
		if msg == "" {
			return nil
		}
		if err := f.driver.Info(ctx, msg); err != nil {
			return err
		}
	}
}

func (f *Filler) ask(ctx context.Context, s *session.Session, field forms.Field) (forms.Value, error) {
	current := s.Values()[field.Name]

	if field.Kind == forms.KindFlag {
		ok, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: field.Label,
			Default: current.Flag(),
		})
		if err != nil {
			return forms.Value{}, err
		}
		return forms.Flag(ok), nil
	}

	if len(field.Choices) > 0 {
		i, err := f.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      field.Choices,
			DefaultIndex: indexOf(field.Choices, current.Text()),
			PageSize:     10,
		})
		if err != nil {
			return forms.Value{}, err
		}
		if i < 0 || i >= len(field.Choices) {
			return forms.Text(""), nil
		}
		return forms.Text(field.Choices[i]), nil
	}

	cfg := InputConfig{
		Message: field.Label,
		Default: current.Text(),
		Validator: func(in string) error {
			if msg := s.Check(field.Name, forms.Text(strings.TrimSpace(in))); msg != "" {
				return errors.New(msg)
			}
			return nil
		},
	}
	if field.Optional {
		cfg.Help = "Optional, leave blank to skip"
	}
	in, err := f.driver.Input(ctx, cfg)
	if err != nil {
		return forms.Value{}, err
	}
	return forms.Text(strings.TrimSpace(in)), nil
}

// lookupPincode resolves the PIN code just entered and returns the names of
// the fields it filled.
func (f *Filler) lookupPincode(ctx context.Context, s *session.Session) ([]string, error) {
	code := s.Values().Text(forms.FieldPincode)
	loc, err := s.LookupPincode(ctx, code)
	switch {
	case err == nil:
	case errors.Is(err, pincode.ErrNotFound):
		return nil, f.driver.Info(ctx, session.MsgPincodeUnknown)
	case errors.Is(err, pincode.ErrInvalidCode):
		return nil, nil
	default:
		f.log.WarnContext(ctx, "pincode lookup failed", logger.Error(err))
		return nil, f.driver.Info(ctx, session.MsgPincodeUnknown)
	}

	if err := f.driver.Info(ctx, fmt.Sprintf("%s, %s, %s", loc.City, loc.District, loc.State)); err != nil {
		return nil, err
	}
	var filled []string
	for _, name := range []string{forms.FieldCity, forms.FieldDistrict, forms.FieldState} {
		if s.Form().HasField(name) {
			filled = append(filled, name)
		}
	}
	return filled, nil
}

func (f *Filler) verifyMobile(ctx context.Context, s *session.Session) error {
	if err := f.sendOTP(ctx, s); err != nil {
		return err
	}

	otpField, _ := s.Form().Field(forms.FieldOTP)
	for attempt := 1; ; attempt++ {
		if err := f.askField(ctx, s, otpField); err != nil {
			return err
		}
		err := s.VerifyOTP(ctx)
		switch {
		case err == nil:
			return f.driver.Info(ctx, "Mobile number verified")
		case !errors.Is(err, otp.ErrInvalidCode):
			return err
		case attempt >= f.otpAttempts:
			return fmt.Errorf("%w: otp verification", ErrTooManyAttempts)
		}
		if err := f.driver.Info(ctx, session.MsgInvalidOTP); err != nil {
			return err
		}
	}
}

func (f *Filler) sendOTP(ctx context.Context, s *session.Session) error {
	err := s.RequestOTP(ctx)
	var cooldown *otp.CooldownError
	switch {
	case err == nil:
		return f.driver.Info(ctx, "OTP sent to "+s.Values().Text(forms.FieldPrimaryMobile))
	case errors.As(err, &cooldown):
		// A code from the previous send is still usable.
		return f.driver.Info(ctx, fmt.Sprintf("Resend OTP in %ds", cooldown.Seconds()))
	default:
		return err
	}
}

func (f *Filler) collectFiles(ctx context.Context, s *session.Session) error {
	policy := s.AttachmentPolicy()
	for {
		path, err := f.driver.Input(ctx, InputConfig{
			Message: "Document file path",
			Help:    policy.Describe() + ". Leave blank when done",
		})
		if err != nil {
			return err
		}
		path = strings.TrimSpace(path)

		if path == "" {
			if len(s.Attachments()) > 0 {
				return nil
			}
			if err := f.driver.Info(ctx, attachment.MsgNone); err != nil {
				return err
			}
			continue
		}

		m, err := s.AttachFile(path)
		if err != nil {
			msg := policy.Message(err)
			if msg == "" {
				msg = err.Error()
			}
			if err := f.driver.Info(ctx, msg); err != nil {
				return err
			}
			continue
		}
		if err := f.driver.Info(ctx, fmt.Sprintf("Attached %s (%s)", m.Name, attachment.FormatSize(m.Size))); err != nil {
			return err
		}
	}
}

func (f *Filler) submit(ctx context.Context, s *session.Session) (submission.Ack, error) {
	if f.confirm {
		ok, err := f.driver.Confirm(ctx, ConfirmConfig{Message: "Submit " + s.Form().Title + "?", Default: true})
		if err != nil {
			return submission.Ack{}, err
		}
		if !ok {
			return submission.Ack{}, ErrCancelled
		}
	}

	ack, err := s.Submit(ctx)
	if err != nil {
		var msg string
		if verr, ok := forms.AsValidationError(err); ok {
			msg = session.MsgFixErrors
			for _, name := range verr.Errors.Fields() {
				msg += fmt.Sprintf("\n  %s: %s", name, verr.Errors.Get(name))
			}
		} else if errors.Is(err, session.ErrVerificationRequired) {
			msg = session.MsgVerifyFirst
		}
		if msg != "" {
			_ = f.driver.Info(ctx, msg)
		}
		return submission.Ack{}, err
	}

	f.log.InfoContext(ctx, "form filled", logger.Form(s.Form().ID), logger.AckRef(ack.Reference))
	return ack, f.driver.Info(ctx, "Submitted. Reference: "+ack.Reference)
}
