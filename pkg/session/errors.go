package session

import "errors"

var (
	ErrInvalidState         = errors.New("session is not in a state that allows this operation")
	ErrVerificationRequired = errors.New("mobile number not verified")
	ErrNotSupported         = errors.New("operation not supported by this form")
)

// Messages shown to the user by session flows.
const (
	MsgInvalidOTP     = "Invalid OTP"
	MsgVerifyFirst    = "Please verify your mobile number first"
	MsgFixErrors      = "Please fix all errors before submitting"
	MsgPincodeUnknown = "Please enter city, district, and state manually"
)
