package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/easyvalidator/pkg/config"
	"github.com/dmitrymomot/easyvalidator/pkg/httpserver"
	"github.com/dmitrymomot/easyvalidator/pkg/mongo"
	"github.com/dmitrymomot/easyvalidator/pkg/opensearch"
	"github.com/dmitrymomot/easyvalidator/pkg/pg"
	"github.com/dmitrymomot/easyvalidator/pkg/redis"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

var errUnknownBackend = errors.New("unknown lookup backend")

// backend is an opened lookup store with its readiness probe.
type backend struct {
	lookup validator.Lookup
	checks []httpserver.Check
	close  func()
}

func noBackend() backend { return backend{close: func() {}} }

// openBackend connects the store named by LOOKUP_BACKEND. Each store reads
// its own env config only when selected.
func openBackend(ctx context.Context, name string) (backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return noBackend(), nil

	case "pg", "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return backend{}, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		return backend{
			lookup: pg.NewLookup(pool, cfg),
			checks: []httpserver.Check{{Name: "pg", Fn: pg.Healthcheck(pool)}},
			close:  pool.Close,
		}, nil

	case "redis":
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return backend{}, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		return backend{
			lookup: redis.NewLookup(client, cfg),
			checks: []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}},
			close:  func() { _ = client.Close() },
		}, nil

	case "mongo", "mongodb":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return backend{}, err
		}
		client, err := mongo.Connect(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		return backend{
			lookup: mongo.NewLookup(client.Database(cfg.Database)),
			checks: []httpserver.Check{{Name: "mongo", Fn: mongo.Healthcheck(client)}},
			close:  func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case "opensearch":
		var cfg opensearch.Config
		if err := config.Load(&cfg); err != nil {
			return backend{}, err
		}
		client, err := opensearch.New(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		return backend{
			lookup: opensearch.NewLookup(client, cfg),
			checks: []httpserver.Check{{Name: "opensearch", Fn: opensearch.Healthcheck(client)}},
			close:  func() {},
		}, nil
	}
	return backend{}, fmt.Errorf("%w: %q", errUnknownBackend, name)
}
