package usecase

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorUnsupportedIntent  ErrorCode = "UNSUPPORTED_INTENT"
	ErrorInvalidApplication ErrorCode = "INVALID_APPLICATION"
	ErrorInvalidRequest     ErrorCode = "INVALID_REQUEST"
	ErrorInternal           ErrorCode = "INTERNAL_ERROR"
)

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a coded error; callers outside the package use it for
// envelope-level failures.
func NewError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// CodeOf reports the code carried by err, or ErrorInternal when err is not a
// *Error.
func CodeOf(err error) ErrorCode {
	var ue *Error
	if errors.As(err, &ue) && ue != nil {
		return ue.Code
	}
	return ErrorInternal
}

// IsUnsupportedIntent reports whether err is the router's unsupported intent failure.
func IsUnsupportedIntent(err error) bool {
	return err != nil && CodeOf(err) == ErrorUnsupportedIntent
}
