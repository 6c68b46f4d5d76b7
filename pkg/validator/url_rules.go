package validator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Resolver is the DNS capability consumed by active_url. *net.Resolver
// satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// activeURLRule passes when the host of the value resolves to at least one
// address. The scheme is optional: "example.com/docs" is checked as example.com.
type activeURLRule struct {
	Base
	hosts Resolver
}

func (r *activeURLRule) CheckValue(ctx context.Context) {
	host, ok := urlHost(String(r.Value()))
	if !ok {
		r.Fail()
		return
	}
	addrs, err := r.hosts.LookupHost(ctx, host)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			r.Fail()
			return
		}
		r.FailWith(fmt.Errorf("%s %s: %w", r.Name(), host, err))
		return
	}
	r.SetStatus(len(addrs) > 0)
}

func urlHost(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	return u.Hostname(), true
}

func newActiveURL(in Input) (Rule, error) {
	if in.Resolver == nil {
		return nil, fmt.Errorf("%w: rule %q", ErrResolverNotConfigured, in.Name)
	}
	return &activeURLRule{Base: NewBase(in, "{VALUE} of {FIELD} is not an active url"), hosts: in.Resolver}, nil
}
