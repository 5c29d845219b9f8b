// Package middlewares provides the HTTP middleware stack of the gateway.
//
// # Request ID
//
// RequestID reuses a well-formed incoming X-Request-ID (or X-Correlation-ID)
// and otherwise generates a ULID. The ID is echoed in the response and, via
// RequestIDExtractor, attached to every log line:
//
//	log := logger.New(cfg, os.Stdout, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover turns a panic into a *PanicError so the application error handler
// answers 500 instead of the connection being dropped.
//
// # API key
//
// APIKey guards a route group with a shared secret read from X-API-KEY or
// the Authorization header:
//
//	r.Route("/external", func(r mailgate.Router) {
//	    r.Use(middlewares.APIKey(cfg.APIKey))
//	    r.POST("/send-email", h.sendEmail)
//	})
package middlewares
