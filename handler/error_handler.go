package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/easyvalidator/pkg/logger"
	"github.com/dmitrymomot/easyvalidator/pkg/requestid"
)

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// logLevel maps HTTP status codes to log levels: warn for 4xx, error otherwise.
func logLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler returns an ErrorHandler that logs err with the request id
// and renders it as a JSON error body.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		ctx := r.Context()
		resp := jsonError(err)

		log.LogAttrs(ctx, logLevel(resp.status), "request error",
			logger.RequestID(requestid.FromContext(ctx)),
			logger.Error(err),
			slog.Int("status_code", resp.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := resp.Render(w, r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.RequestID(requestid.FromContext(ctx)),
				logger.Error(renderErr),
			)
		}
	}
}
