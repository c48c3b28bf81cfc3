package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/attachment"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/forms"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/logger"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/otp"
	"github.com/Hemanthreddy-123/bharat-form-guardian/pkg/pincode"
)

// OTPState reports where the mobile verification flow stands.
type OTPState struct {
	Sent     bool
	Verified bool
}

func (s *Session) OTPState() OTPState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OTPState{Sent: s.otpSent, Verified: s.otpVerified}
}

// RequestOTP sends a code to the primary mobile number once it passes its
// field rules. A resend inside the cooldown returns an error wrapping
// otp.ErrCooldown.
func (s *Session) RequestOTP(ctx context.Context) error {
	ctx = s.ctx(ctx)
	if !s.form.RequiresVerification {
		return fmt.Errorf("%w: %s has no OTP verification", ErrNotSupported, s.form.ID)
	}
	if s.State() != StateEditing {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.State())
	}

	s.mu.Lock()
	if s.otpVerified {
		s.mu.Unlock()
		return nil
	}
	mobile := s.values.Text(forms.FieldPrimaryMobile)
	if msg := s.form.ValidateField(forms.FieldPrimaryMobile, forms.Text(mobile), s.siblings()); msg != "" {
		s.errs = s.errs.Merge(forms.Errors{forms.FieldPrimaryMobile: msg})
		s.mu.Unlock()
		return &forms.ValidationError{Form: s.form.ID, Errors: forms.Errors{forms.FieldPrimaryMobile: msg}}
	}
	s.mu.Unlock()

	if err := s.otp.Send(ctx, mobile); err != nil {
		s.log.DebugContext(ctx, "otp not sent", logger.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The number may have changed while the code was in flight.
	if s.values.Text(forms.FieldPrimaryMobile) == mobile {
		s.otpSent = true
	}
	s.log.InfoContext(ctx, "otp sent", slog.Bool("sent", s.otpSent))
	return nil
}

// VerifyOTP checks the otp field against the code last sent. A mismatch sets
// the field's message to MsgInvalidOTP and returns otp.ErrInvalidCode.
func (s *Session) VerifyOTP(ctx context.Context) error {
	ctx = s.ctx(ctx)
	if !s.form.RequiresVerification {
		return fmt.Errorf("%w: %s has no OTP verification", ErrNotSupported, s.form.ID)
	}

	s.mu.Lock()
	if !s.otpSent {
		s.mu.Unlock()
		return otp.ErrNotSent
	}
	mobile := s.values.Text(forms.FieldPrimaryMobile)
	code := s.values.Text(forms.FieldOTP)
	if msg := s.form.ValidateField(forms.FieldOTP, forms.Text(code), s.siblings()); msg != "" {
		s.errs = s.errs.Merge(forms.Errors{forms.FieldOTP: msg})
		s.mu.Unlock()
		return &forms.ValidationError{Form: s.form.ID, Errors: forms.Errors{forms.FieldOTP: msg}}
	}
	s.mu.Unlock()

	ok, err := s.otp.Verify(ctx, mobile, code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !ok {
		s.errs = s.errs.Merge(forms.Errors{forms.FieldOTP: MsgInvalidOTP})
		s.log.InfoContext(ctx, "otp rejected")
		return otp.ErrInvalidCode
	}
	s.otpVerified = true
	s.errs = s.errs.Merge(forms.Errors{forms.FieldOTP: ""})
	s.log.InfoContext(ctx, "otp verified")
	return nil
}

// LookupPincode stores code in the pincode field and, once it has six
// digits, resolves it. A hit fills whichever of city, district and state the
// form declares and clears their errors. A miss returns an error wrapping
// pincode.ErrNotFound and leaves those fields for manual entry. Forms
// without PIN code lookup get ErrNotSupported and nothing is stored.
func (s *Session) LookupPincode(ctx context.Context, code string) (pincode.Location, error) {
	ctx = s.ctx(ctx)
	if !s.form.PincodeLookup {
		return pincode.Location{}, fmt.Errorf("%w: %s has no PIN code lookup", ErrNotSupported, s.form.ID)
	}
	msg, err := s.Change(forms.FieldPincode, forms.Text(code))
	if err != nil {
		return pincode.Location{}, err
	}
	if msg != "" || !pincode.Valid(code) {
		return pincode.Location{}, fmt.Errorf("%w: %q", pincode.ErrInvalidCode, code)
	}

	loc, err := s.resolver.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, pincode.ErrNotFound) {
			s.log.InfoContext(ctx, "pincode not found", slog.String("pincode", code))
		}
		return pincode.Location{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values.Text(forms.FieldPincode) != code {
		// Superseded by a newer edit.
		return loc, nil
	}
	fill := map[string]string{
		forms.FieldCity:     loc.City,
		forms.FieldDistrict: loc.District,
		forms.FieldState:    loc.State,
	}
	cleared := forms.Errors{}
	for name, v := range fill {
		if s.form.HasField(name) {
			s.values[name] = forms.Text(v)
			cleared[name] = ""
		}
	}
	s.errs = s.errs.Merge(cleared)
	s.log.InfoContext(ctx, "pincode resolved", slog.String("pincode", code), slog.String("city", loc.City))
	return loc, nil
}

// Attach adds an uploaded file. Files breaking the attachment policy are
// refused with an error wrapping attachment.ErrUnsupportedType or
// attachment.ErrTooLarge.
func (s *Session) Attach(m attachment.Meta) (attachment.Meta, error) {
	if !s.form.RequiresAttachments {
		return attachment.Meta{}, fmt.Errorf("%w: %s takes no attachments", ErrNotSupported, s.form.ID)
	}
	if s.State() != StateEditing {
		return attachment.Meta{}, fmt.Errorf("%w: %s", ErrInvalidState, s.State())
	}

	added, err := s.files.Add(m)
	if err != nil {
		s.log.Debug("attachment refused", slog.String("name", m.Name), logger.Error(err))
		return attachment.Meta{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = s.errs.Merge(forms.Errors{forms.FieldFiles: ""})
	return added, nil
}

// AttachFile inspects the file at path and attaches it.
func (s *Session) AttachFile(path string) (attachment.Meta, error) {
	m, err := attachment.Open(path)
	if err != nil {
		return attachment.Meta{}, err
	}
	return s.Attach(m)
}

// Detach removes an attachment by ID.
func (s *Session) Detach(id uuid.UUID) error {
	if s.State() != StateEditing {
		return fmt.Errorf("%w: %s", ErrInvalidState, s.State())
	}
	return s.files.Remove(id)
}

// AttachmentPolicy returns the upload limits of the session.
func (s *Session) AttachmentPolicy() attachment.Policy {
	return s.files.Policy()
}

// Attachments lists accepted files in upload order.
func (s *Session) Attachments() []attachment.Meta {
	return s.files.List()
}
