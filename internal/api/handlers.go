package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/easyvalidator/handler"
	"github.com/dmitrymomot/easyvalidator/internal/catalog"
	"github.com/dmitrymomot/easyvalidator/pkg/binder"
	"github.com/dmitrymomot/easyvalidator/pkg/httpserver"
	"github.com/dmitrymomot/easyvalidator/pkg/logger"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// FieldInfo describes one schema field.
type FieldInfo struct {
	Name  string `json:"name"`
	Chain string `json:"chain"`
}

// SchemaInfo is the data of GET /schemas/{schema}.
type SchemaInfo struct {
	Name   string      `json:"name"`
	Fields []FieldInfo `json:"fields"`
}

// validate answers 200 with the Result as data when every rule passes and
// 422 with a validation_error otherwise.
func (h *Handler) validate(r *http.Request) handler.Response {
	ctx := r.Context()
	name := chi.URLParam(r, "schema")
	meta := map[string]any{"schema": name}

	schema, err := h.catalog.Get(name)
	if err != nil {
		return handler.JSONError(catalogError(err))
	}

	rec, err := binder.Record(r, h.binderOpts...)
	if err != nil {
		return handler.JSONError(bindError(err), handler.WithJSONMeta(meta))
	}

	start := time.Now()
	v := validator.New(schema, rec, h.runOptions()...)
	ok, err := v.Validate(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "schema failed at run time", logger.Schema(name), logger.Error(err))
		cause := fmt.Errorf("schema %s is misconfigured", name)
		return handler.JSONError(handler.ErrInternalServerError.WithCause(cause), handler.WithJSONMeta(meta))
	}

	h.log.DebugContext(ctx, "validated request",
		logger.Schema(name),
		slog.Bool("status", ok),
		logger.Duration(time.Since(start)),
	)

	if !ok {
		return handler.JSONError(v.Err(), handler.WithJSONMeta(meta))
	}
	return handler.JSON(v.Result(), handler.WithJSONMeta(meta))
}

func (h *Handler) listSchemas(*http.Request) handler.Response {
	names := h.catalog.Names()
	return handler.JSON(names, handler.WithJSONMeta(map[string]any{"count": len(names)}))
}

func (h *Handler) getSchema(r *http.Request) handler.Response {
	name := chi.URLParam(r, "schema")
	schema, err := h.catalog.Get(name)
	if err != nil {
		return handler.JSONError(catalogError(err))
	}

	info := SchemaInfo{Name: name, Fields: make([]FieldInfo, 0, schema.Len())}
	for _, field := range schema.Fields() {
		chain, _ := schema.Chain(field)
		info.Fields = append(info.Fields, FieldInfo{Name: field, Chain: chain})
	}
	return handler.JSON(info)
}

func (h *Handler) listRules(*http.Request) handler.Response {
	rules := validator.DefaultRegistry()
	for name, def := range h.rules {
		rules[name] = def
	}
	names := rules.Names()
	return handler.JSON(names, handler.WithJSONMeta(map[string]any{"count": len(names)}))
}

// health answers liveness without checks and readiness with them.
func (h *Handler) health(checks ...httpserver.Check) handler.HandlerFunc {
	return func(r *http.Request) handler.Response {
		status, code := httpserver.CheckHealth(r.Context(), h.log, checks...)
		return handler.JSON(status, handler.WithJSONStatus(code))
	}
}

func notFound(*http.Request) handler.Response {
	return handler.JSONError(handler.ErrNotFound)
}

func methodNotAllowed(*http.Request) handler.Response {
	return handler.JSONError(handler.ErrMethodNotAllowed)
}

func catalogError(err error) error {
	if errors.Is(err, catalog.ErrSchemaNotFound) {
		return handler.ErrNotFound.WithCause(err)
	}
	return handler.ErrInternalServerError.WithCause(err)
}

func bindError(err error) error {
	if errors.Is(err, binder.ErrUnsupportedMediaType) {
		return handler.ErrUnsupportedMediaType.WithCause(err)
	}
	return handler.ErrBadRequest.WithCause(err)
}
