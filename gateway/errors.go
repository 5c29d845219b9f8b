package gateway

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is. Authorization failures never reach
// the service; middlewares.APIKey rejects them as HTTP errors.
var (
	ErrInvalidInput  = errors.New("gateway: invalid input")
	ErrMisconfigured = errors.New("gateway: misconfigured")
	ErrProvider      = errors.New("gateway: provider error")
	ErrStore         = errors.New("gateway: store error")
)

// Error is a classified failure with a caller-facing message.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidInput(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func misconfigured(msg string, err error) *Error {
	return &Error{Kind: ErrMisconfigured, Message: msg, Err: err}
}
