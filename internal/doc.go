// Package internal provides the core types and implementation for the mailgate HTTP runtime.
//
// This package is internal and should not be used directly. Import "github.com/dmitrymomot/mailgate"
// instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates routing, middleware, health endpoints and graceful shutdown
//   - Context: Provides request/response access, JSON helpers and request-scoped logging
//   - Router: Interface handlers use to declare routes with HTTP methods and grouping
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns like API key checks
//   - ErrorHandler: Converts handler errors into responses
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to stores and
// provider clients:
//
//	func (h *Handler) query(c mailgate.Context) error {
//	    emails, err := h.svc.QueryEmail(c, req)
//	    if err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, emails)
//	}
//
// # Error Handling
//
// Handlers return errors instead of writing failure responses. The App passes
// them to the configured ErrorHandler unless the response was already written.
// HTTPError carries the status code and a user-facing message.
package internal
