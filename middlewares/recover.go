package middlewares

import (
	"runtime"

	"github.com/dmitrymomot/mailgate/internal"
)

const defaultStackSize = 4 << 10

// RecoverOption configures Recover.
type RecoverOption func(*recoverConfig)

type recoverConfig struct {
	stackSize int
}

// WithStackSize caps the captured stack trace. Zero disables capture.
func WithStackSize(n int) RecoverOption {
	return func(c *recoverConfig) { c.stackSize = max(n, 0) }
}

// Recover converts panics into *PanicError and logs them.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := recoverConfig{stackSize: defaultStackSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				pe := &PanicError{Value: r}
				attrs := []any{"panic", r}
				if cfg.stackSize > 0 {
					buf := make([]byte, cfg.stackSize)
					pe.Stack = buf[:runtime.Stack(buf, false)]
					attrs = append(attrs, "stack", string(pe.Stack))
				}
				c.LogError("panic recovered", attrs...)
				err = pe
			}()

			return next(c)
		}
	}
}
