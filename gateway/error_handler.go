package gateway

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailgate/internal"
	"github.com/dmitrymomot/mailgate/middlewares"
)

// ErrorHandler renders every failure as {"code": status, "message": ...}.
// Server-side failures are logged and reported with a generic message
// unless they carry one meant for callers.
func ErrorHandler(c internal.Context, err error) error {
	code, msg := classify(err)

	attrs := []any{
		slog.Int("status", code),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	}
	if pe, ok := middlewares.AsPanicError(err); ok && pe.Stack != nil {
		attrs = append(attrs, slog.String("stack", string(pe.Stack)))
	}
	if code >= http.StatusInternalServerError {
		c.LogError("request failed", attrs...)
	} else {
		c.LogWarn("request rejected", attrs...)
	}

	return c.JSON(code, errorBody{Code: code, Message: msg})
}

func classify(err error) (int, string) {
	var ge *Error
	if errors.As(err, &ge) {
		if errors.Is(ge.Kind, ErrInvalidInput) {
			return http.StatusBadRequest, ge.Message
		}
		return http.StatusInternalServerError, ge.Message
	}

	if he := internal.AsHTTPError(err); he != nil {
		msg := he.Message
		if msg == "" {
			msg = he.StatusText()
		}
		return he.Code, msg
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// NotFound answers unknown routes.
func NotFound(internal.Context) error {
	return internal.ErrNotFound("route not found")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(internal.Context) error {
	return internal.ErrMethodNotAllowed("method not allowed")
}
