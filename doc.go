// Package mailgate is an authenticated HTTP gateway for transactional email.
//
// It exposes two endpoints under /external: send-email dispatches a message
// through Resend using the token configured for the system sender domain, and
// query-email lists received messages for a recipient with optional sender
// and time filters.
//
// The root package re-exports the small application framework from internal
// so that binaries and tests can build an App without importing internal:
//
//	app := mailgate.New(
//	    mailgate.WithLogger(log),
//	    mailgate.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    mailgate.WithErrorHandler(gateway.ErrorHandler),
//	    mailgate.WithHandlers(gateway.NewHandler(svc, cfg.APIKey)),
//	    mailgate.WithHealthChecks(
//	        mailgate.WithReadinessCheck("postgres", db.Healthcheck(pool)),
//	    ),
//	)
//
//	if err := app.Run(":8080", mailgate.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// Domain logic lives in the gateway package. Reusable building blocks
// (address validation, cache, settings, mail store, mailer, logger,
// database and redis connections) live under pkg/.
package mailgate
