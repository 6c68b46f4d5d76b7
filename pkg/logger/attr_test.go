package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Field("email"), "field", "email"},
		{logger.Rule("required"), "rule", "required"},
		{logger.Schema("signup"), "schema", "signup"},
		{logger.Backend("redis"), "backend", "redis"},
		{logger.RequestID("abc"), "request_id", "abc"},
		{logger.Component("http"), "component", "http"},
		{logger.Duration(time.Second), "duration", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	t.Run("empty names yield empty attrs", func(t *testing.T) {
		assert.True(t, logger.Field("").Equal(slog.Attr{}))
		assert.True(t, logger.Rule("").Equal(slog.Attr{}))
		assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	})
}
