// Package api exposes the schema catalog over HTTP.
package api

import (
	"log/slog"
	"maps"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/easyvalidator/handler"
	"github.com/dmitrymomot/easyvalidator/internal/catalog"
	"github.com/dmitrymomot/easyvalidator/pkg/binder"
	"github.com/dmitrymomot/easyvalidator/pkg/clientip"
	"github.com/dmitrymomot/easyvalidator/pkg/httpserver"
	"github.com/dmitrymomot/easyvalidator/pkg/logger"
	"github.com/dmitrymomot/easyvalidator/pkg/requestid"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// Handler serves validation requests against a catalog.
type Handler struct {
	catalog    *catalog.Catalog
	log        *slog.Logger
	rules      validator.Registry
	lookup     validator.Lookup
	checks     []httpserver.Check
	binderOpts []binder.Option
	validOpts  []validator.Option
	onError    handler.ErrorHandler
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithRules adds custom rules on top of the built-in catalogue.
func WithRules(rules validator.Registry) Option {
	return func(h *Handler) {
		if h.rules == nil {
			h.rules = make(validator.Registry, len(rules))
		}
		maps.Copy(h.rules, rules)
	}
}

// WithLookup sets the store used by unique and exist rules.
func WithLookup(l validator.Lookup) Option {
	return func(h *Handler) { h.lookup = l }
}

// WithReadinessChecks registers probes for the readiness endpoint.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

// WithBinderOptions tunes request body extraction.
func WithBinderOptions(opts ...binder.Option) Option {
	return func(h *Handler) { h.binderOpts = append(h.binderOpts, opts...) }
}

// WithValidatorOptions passes extra options, such as date formats, to every run.
func WithValidatorOptions(opts ...validator.Option) Option {
	return func(h *Handler) { h.validOpts = append(h.validOpts, opts...) }
}

// New returns a Handler serving cat.
func New(cat *catalog.Catalog, opts ...Option) *Handler {
	h := &Handler{
		catalog: cat,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("api"))
	h.onError = handler.NewErrorHandler(h.log)
	return h
}

// runOptions returns the options every run uses. The catalog must be
// compiled with the same custom rules.
func (h *Handler) runOptions() []validator.Option {
	opts := []validator.Option{validator.WithLogger(h.log)}
	if len(h.rules) > 0 {
		opts = append(opts, validator.WithRules(h.rules))
	}
	if h.lookup != nil {
		opts = append(opts, validator.WithLookup(h.lookup))
	}
	return append(opts, h.validOpts...)
}

func (h *Handler) wrap(f handler.HandlerFunc) http.HandlerFunc {
	return handler.Wrap(f, handler.WithErrorHandler(h.onError))
}

// Routes mounts the endpoints. Every body is a handler.JSONResponse.
//
//	POST /validate/{schema}  validate the request body or query
//	GET  /schemas            list schema names
//	GET  /schemas/{schema}   show fields and chains
//	GET  /rules              list rule names
//	GET  /health/live        liveness probe
//	GET  /health/ready       readiness probe
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)

	r.Post("/validate/{schema}", h.wrap(h.validate))
	r.Get("/schemas", h.wrap(h.listSchemas))
	r.Get("/schemas/{schema}", h.wrap(h.getSchema))
	r.Get("/rules", h.wrap(h.listRules))
	r.Get("/health/live", h.wrap(h.health()))
	r.Get("/health/ready", h.wrap(h.health(h.checks...)))

	r.NotFound(h.wrap(notFound))
	r.MethodNotAllowed(h.wrap(methodNotAllowed))
	return r
}
