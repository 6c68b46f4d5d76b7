package handler_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/easyvalidator/handler"
	"github.com/dmitrymomot/easyvalidator/pkg/requestid"
)

type failingResponse struct{ err error }

func (f failingResponse) Render(http.ResponseWriter, *http.Request) error { return f.err }

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("renders response", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(*http.Request) handler.Response {
			return handler.JSON([]string{"signup"})
		})
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/schemas", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":["signup"]}`, w.Body.String())
	})

	t.Run("nil response goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(
			func(*http.Request) handler.Response { return nil },
			handler.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
				got = err
				w.WriteHeader(http.StatusTeapot)
			}),
		)
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.ErrorIs(t, got, handler.ErrNilResponse)
		assert.Equal(t, http.StatusTeapot, w.Code)
	})

	t.Run("default error handler renders json", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(*http.Request) handler.Response {
			return failingResponse{err: handler.ErrBadRequest}
		})
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":{"code":"bad_request","message":"Bad Request"}}`, w.Body.String())
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{name: "client error", err: handler.ErrNotFound, status: http.StatusNotFound, level: "level=WARN"},
		{name: "server error", err: errors.New("encode: broken pipe"), status: http.StatusInternalServerError, level: "level=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))

			r := httptest.NewRequest(http.MethodPost, "/validate/signup", nil)
			r = r.WithContext(requestid.WithContext(r.Context(), "req-42"))
			w := httptest.NewRecorder()
			handler.NewErrorHandler(log)(w, r, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, buf.String(), "request error")
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "request_id=req-42")
			assert.Contains(t, buf.String(), "path=/validate/signup")
		})
	}
}
