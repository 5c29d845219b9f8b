package middlewares

import (
	"errors"
	"fmt"
)

var (
	ErrAPIKeyNotConfigured = errors.New("middlewares: api key not configured")
	ErrInvalidAPIKey       = errors.New("middlewares: invalid api key")
)

// PanicError carries a recovered panic value.
type PanicError struct {
	Value any
	Stack []byte // nil when stack capture is disabled
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts a *PanicError from err.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
