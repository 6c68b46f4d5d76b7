package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the HTTP server. Options panic on values that can only
// be programming errors, such as a negative timeout.
type Option func(*config)

func mustPositive(opt string, d time.Duration) {
	if d <= 0 {
		panic("httpserver: " + opt + ": duration must be positive")
	}
}

func mustNotNil(opt string, ok bool) {
	if !ok {
		panic("httpserver: " + opt + ": nil argument")
	}
}

// WithAddr sets the listen address, e.g. ":8080" or "127.0.0.1:0".
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr: empty address")
	}
	return func(c *config) { c.addr = addr }
}

// WithReadTimeout sets the request read timeout, body included.
// Large multipart uploads to the validation endpoint count against it.
func WithReadTimeout(d time.Duration) Option {
	mustPositive("WithReadTimeout", d)
	return func(c *config) { c.readTimeout = d }
}

// WithWriteTimeout sets the response write timeout.
func WithWriteTimeout(d time.Duration) Option {
	mustPositive("WithWriteTimeout", d)
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("WithIdleTimeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("WithShutdownTimeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer uses srv as the base server. Its Handler is replaced on Run;
// timeouts and Addr already set on srv win over the options.
func WithServer(srv *http.Server) Option {
	mustNotNil("WithServer", srv != nil)
	return func(c *config) { c.server = srv }
}

// WithLogger sets the logger for lifecycle events. Nil discards them.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook registers a callback run once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	mustNotNil("WithStartHook", h != nil)
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook registers a callback run after in-flight requests drain.
func WithStopHook(h func(*slog.Logger)) Option {
	mustNotNil("WithStopHook", h != nil)
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}
