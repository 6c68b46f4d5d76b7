package httpserver_test

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/httpserver"
)

const loopback = "127.0.0.1:0"

// startServer runs srv in the background and waits for the listener.
func startServer(t *testing.T, ctx context.Context, opts ...httpserver.Option) (*httpserver.Server, <-chan error) {
	t.Helper()
	started := make(chan struct{})
	opts = append([]httpserver.Option{
		httpserver.WithAddr(loopback),
		httpserver.WithShutdownTimeout(100 * time.Millisecond),
		httpserver.WithStartHook(func(_ *slog.Logger) { close(started) }),
	}, opts...)
	srv := httpserver.New(opts...)

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
	}()

	select {
	case <-started:
	case err := <-done:
		require.FailNow(t, "server did not start", "%v", err)
	case <-time.After(time.Second):
		require.FailNow(t, "server did not start in time")
	}
	return srv, done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()

	t.Run("context cancel stops server", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		srv, done := startServer(t, ctx)

		resp, err := http.Get("http://" + srv.Addr())
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		cancel()
		waitDone(t, done)
		require.NoError(t, srv.Shutdown(context.Background()))
	})

	t.Run("manual shutdown is idempotent", func(t *testing.T) {
		t.Parallel()
		srv, done := startServer(t, context.Background())
		require.NoError(t, srv.Shutdown(context.Background()), "first shutdown")
		require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
		waitDone(t, done)
	})
}

func TestStartError(t *testing.T) {
	t.Parallel()

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.New(httpserver.WithAddr(":invalid"))
		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})

	t.Run("address in use", func(t *testing.T) {
		t.Parallel()
		ln, err := net.Listen("tcp", loopback)
		require.NoError(t, err)
		defer ln.Close()

		var started atomic.Bool
		srv := httpserver.New(
			httpserver.WithAddr(ln.Addr().String()),
			httpserver.WithStartHook(func(_ *slog.Logger) { started.Store(true) }),
		)
		err = srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
		assert.False(t, started.Load(), "start hook ran without listener")
	})

	t.Run("already running", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		srv, done := startServer(t, ctx)

		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
		assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

		cancel()
		waitDone(t, done)
	})
}

func TestHooksAndLogging(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	var stopped atomic.Bool
	var hookLogger *slog.Logger
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, done := startServer(t, ctx,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) { hookLogger = l }),
		httpserver.WithStopHook(func(_ *slog.Logger) { stopped.Store(true) }),
	)
	cancel()
	waitDone(t, done)

	assert.True(t, stopped.Load(), "stop hook not executed")
	assert.NotNil(t, hookLogger)
	assert.Contains(t, buf.String(), "http server started")
	assert.Contains(t, buf.String(), "http server stopped")
	assert.Contains(t, buf.String(), "component=httpserver")
}

func TestServerOptions(t *testing.T) {
	t.Parallel()

	t.Run("timeouts applied", func(t *testing.T) {
		t.Parallel()
		hs := &http.Server{}
		srv, done := startServer(t, context.Background(),
			httpserver.WithServer(hs),
			httpserver.WithReadTimeout(time.Second),
			httpserver.WithWriteTimeout(2*time.Second),
			httpserver.WithIdleTimeout(3*time.Second),
		)
		assert.Equal(t, time.Second, hs.ReadTimeout)
		assert.Equal(t, 2*time.Second, hs.WriteTimeout)
		assert.Equal(t, 3*time.Second, hs.IdleTimeout)
		assert.NotNil(t, hs.Handler)
		require.NoError(t, srv.Shutdown(context.Background()))
		waitDone(t, done)
	})

	t.Run("preset server values win", func(t *testing.T) {
		t.Parallel()
		hs := &http.Server{ReadTimeout: 5 * time.Second}
		srv, done := startServer(t, context.Background(),
			httpserver.WithServer(hs),
			httpserver.WithReadTimeout(time.Second),
		)
		assert.Equal(t, 5*time.Second, hs.ReadTimeout)
		require.NoError(t, srv.Shutdown(context.Background()))
		waitDone(t, done)
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()
		srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"})
		assert.Equal(t, "127.0.0.1:9999", srv.Addr())

		srv = httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"}, httpserver.WithAddr(":7000"))
		assert.Equal(t, ":7000", srv.Addr())
	})
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"write", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"server", func() { httpserver.WithServer(nil) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}

	t.Run("nil logger allowed", func(t *testing.T) {
		assert.NotPanics(t, func() { httpserver.New(httpserver.WithLogger(nil)) })
	})
}
