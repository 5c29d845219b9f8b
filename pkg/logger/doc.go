// Package logger builds the structured slog logger used across the service.
//
// Output is JSON (or text for local runs) at the configured level. Request
// scoped values such as the request ID are attached per call through
// [ContextExtractor] functions, and records at warn level and above are
// forwarded to Sentry when a DSN is configured.
//
//	log := logger.New(cfg, os.Stdout, middlewares.RequestIDExtractor())
//	defer logger.Flush(2 * time.Second)
package logger
