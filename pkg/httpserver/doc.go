// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks, and health-check handlers.
//
// A Server is built with New (or NewFromConfig for env-driven setups) and
// functional options such as WithAddr, WithShutdownTimeout and WithLogger.
// Run starts the server in its own goroutine and blocks until the context is
// cancelled, an interrupt or TERM signal arrives, or the listener fails; it
// then drains in-flight requests via http.Server.Shutdown within the
// configured deadline.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown; inspect them with errors.Is.
package httpserver
