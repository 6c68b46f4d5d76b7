package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// SetClient is the part of redis.UniversalClient the lookup uses.
type SetClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...any) *redis.IntCmd
}

// Lookup keeps one set per kind and field, e.g. "lookup:users:email", and
// answers unique/exist rules with SISMEMBER. Members are the string form of
// the value, as the rules see it.
type Lookup struct {
	client SetClient
	prefix string
}

// NewLookup creates a lookup using cfg.KeyPrefix.
func NewLookup(client SetClient, cfg Config) *Lookup {
	return &Lookup{client: client, prefix: cfg.KeyPrefix}
}

// Key returns the set key for kind and field.
func (l *Lookup) Key(kind, field string) string {
	return l.prefix + kind + ":" + field
}

// Exists implements validator.Lookup.
func (l *Lookup) Exists(ctx context.Context, kind, field string, value any) (bool, error) {
	found, err := l.client.SIsMember(ctx, l.Key(kind, field), validator.String(value)).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return found, nil
}

// Add records values as taken. Hosts call it when they persist an entity.
func (l *Lookup) Add(ctx context.Context, kind, field string, values ...any) error {
	if len(values) == 0 {
		return nil
	}
	if err := l.client.SAdd(ctx, l.Key(kind, field), members(values)...).Err(); err != nil {
		return errors.Join(ErrLookupFailed, err)
	}
	return nil
}

// Remove releases values.
func (l *Lookup) Remove(ctx context.Context, kind, field string, values ...any) error {
	if len(values) == 0 {
		return nil
	}
	if err := l.client.SRem(ctx, l.Key(kind, field), members(values)...).Err(); err != nil {
		return errors.Join(ErrLookupFailed, err)
	}
	return nil
}

func members(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = validator.String(v)
	}
	return out
}
