// Package httpserver runs the validation daemon's HTTP listener.
//
// Server binds its address, serves a handler and shuts down gracefully when
// the run context is cancelled or the process receives SIGINT or SIGTERM.
// Lifecycle events are logged through the configured slog.Logger and start
// or stop hooks can be attached with WithStartHook and WithStopHook.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// CheckHealth answers liveness probes and, given Check values, runs
// readiness probes against the configured lookup backends. The caller
// renders the returned HealthStatus and code.
//
// Run wraps listen errors with ErrStart and Shutdown wraps drain errors with
// ErrShutdown.
package httpserver
