package validator_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// staticResolver answers from a fixed host table and records every query.
type staticResolver struct {
	hosts   map[string][]string
	err     error
	queried []string
}

func (r *staticResolver) LookupHost(_ context.Context, host string) ([]string, error) {
	r.queried = append(r.queried, host)
	if r.err != nil {
		return nil, r.err
	}
	addrs, ok := r.hosts[host]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
	}
	return addrs, nil
}

func TestActiveURL(t *testing.T) {
	dns := &staticResolver{hosts: map[string][]string{
		"baidu.com":   {"110.242.68.66"},
		"example.com": {"93.184.215.14"},
		"empty.test":  {},
	}}
	resolver := validator.WithResolver(dns)

	t.Run("resolves host with or without scheme", func(t *testing.T) {
		dns.queried = nil
		passes(t, "url", "active_url", "baidu.com", resolver)
		passes(t, "url", "active_url", "https://example.com/docs?q=1", resolver)
		passes(t, "url", "active_url", "example.com:8080/health", resolver)
		assert.Equal(t, []string{"baidu.com", "example.com", "example.com"}, dns.queried)
	})

	t.Run("fails unknown host", func(t *testing.T) {
		v := fails(t, "url", "active_url", "www.sfsdf.sdffs", resolver)
		assert.Equal(t, []string{"www.sfsdf.sdffs of url is not an active url"}, v.Get("url"))
	})

	t.Run("fails host without addresses", func(t *testing.T) {
		fails(t, "url", "active_url", "empty.test", resolver)
	})

	t.Run("fails value without host", func(t *testing.T) {
		dns.queried = nil
		fails(t, "url", "active_url", "http://", resolver)
		fails(t, "url", "active_url", "   ", resolver)
		assert.Empty(t, dns.queried)
	})

	t.Run("skips empty value", func(t *testing.T) {
		dns.queried = nil
		passes(t, "url", "active_url", "", resolver)
		assert.Empty(t, dns.queried)
	})

	t.Run("uses schema message", func(t *testing.T) {
		schema := validator.NewSchema().
			Field("url", "active_url").
			Message("url", "active_url", "it is not a active url").
			Build()
		v := validator.New(schema, map[string]any{"url": "www.sfsdf.sdffs"}, resolver)
		ok, err := v.Validate(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, map[string]map[string]string{
			"url": {"active_url": "it is not a active url"},
		}, v.Messages())
	})

	t.Run("fails on resolver error", func(t *testing.T) {
		broken := validator.WithResolver(&staticResolver{err: errors.New("dial udp: i/o timeout")})
		fails(t, "url", "active_url", "example.com", broken)
	})

	t.Run("requires resolver", func(t *testing.T) {
		configError(t, "active_url", validator.ErrResolverNotConfigured)
		schema := validator.NewSchema().Field("url", "active_url").Build()
		assert.NoError(t, schema.Compile(resolver))
		assert.True(t, validator.IsConfigError(schema.Compile()))
	})

	t.Run("accepts net resolver", func(t *testing.T) {
		var _ validator.Resolver = net.DefaultResolver
	})
}
