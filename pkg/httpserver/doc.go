// Package httpserver provides a graceful wrapper around net/http.Server.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives, or the
// listener fails; in the first two cases the server drains in-flight requests
// within the configured shutdown timeout. Configuration comes either from
// functional options or from an env-tagged Config struct via NewFromConfig.
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(":8080"),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness/readiness probes for the router.
package httpserver
