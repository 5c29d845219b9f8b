package mailgate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailgate/internal"
	"github.com/dmitrymomot/mailgate/pkg/health"
)

// App orchestrates routing, middleware and graceful shutdown.
type App = internal.App

// Router is the route registration surface passed to handlers.
type Router = internal.Router

// Context is the per-request context handed to handlers.
type Context = internal.Context

// Handler declares routes on a Router.
type Handler = internal.Handler

// HandlerFunc handles a request and returns an error.
type HandlerFunc = internal.HandlerFunc

// Middleware wraps a HandlerFunc.
type Middleware = internal.Middleware

// ErrorHandler renders errors returned from handlers.
type ErrorHandler = internal.ErrorHandler

// Option configures an App.
type Option = internal.Option

// RunOption configures App.Run.
type RunOption = internal.RunOption

// HealthOption configures the health endpoints.
type HealthOption = internal.HealthOption

// HTTPError is an error that carries an HTTP status.
type HTTPError = internal.HTTPError

// New creates an App.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// WithMiddleware appends global middleware.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithErrorHandler overrides the default error renderer.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets the handler for unknown routes.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets the handler for unsupported methods.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks mounts liveness and readiness endpoints.
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLivenessPath overrides the liveness path.
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath overrides the readiness path.
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// WithLogger sets the application logger used for request errors.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// Logger sets the server runtime logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout bounds graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// ShutdownHook registers a cleanup function run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context used for signal handling.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}
