// Package gateway implements the external mail API: sending transactional
// email through the provider configured for the system sender domain, and
// querying received email.
//
// [Service] holds the decision logic and talks to its collaborators through
// narrow interfaces ([settings.Store], [mailer.SenderFactory],
// [mailstore.Store]). [Handler] exposes it over HTTP under /external, behind
// the API key middleware, and [ErrorHandler] renders failures as
// {"code": <status>, "message": "..."}.
package gateway
