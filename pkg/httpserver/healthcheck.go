package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/easyvalidator/pkg/logger"
)

// Check is a named readiness probe, typically a lookup backend ping.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// HealthStatus is the outcome of CheckHealth.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

const (
	StatusAlive    = "alive"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// CheckHealth runs the readiness checks and returns the status with its
// HTTP code.
//
// Without checks the status is always "alive" with 200. With checks every
// probe runs against ctx; all passing gives 200 "ready", any failure gives
// 503 "not_ready" with the failing probe's error in Checks.
func CheckHealth(ctx context.Context, log *slog.Logger, checks ...Check) (HealthStatus, int) {
	if len(checks) == 0 {
		return HealthStatus{Status: StatusAlive}, http.StatusOK
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	status := HealthStatus{Status: StatusReady, Checks: make(map[string]string, len(checks))}
	code := http.StatusOK
	for _, c := range checks {
		if err := c.Fn(ctx); err != nil {
			log.ErrorContext(ctx, "readiness check failed", logger.Backend(c.Name), logger.Error(err))
			status.Checks[c.Name] = err.Error()
			status.Status = StatusNotReady
			code = http.StatusServiceUnavailable
			continue
		}
		status.Checks[c.Name] = "ok"
	}
	return status, code
}
