// Command validatord serves the YAML schemas of a directory over HTTP.
//
//	POST /validate/signup  {"username": "john", "age": 30}
//
// answers 200 with {"data": {"status": true}} or 422 with a validation_error
// listing the failed rules of every field.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/easyvalidator/internal/api"
	"github.com/dmitrymomot/easyvalidator/internal/catalog"
	"github.com/dmitrymomot/easyvalidator/pkg/binder"
	"github.com/dmitrymomot/easyvalidator/pkg/clientip"
	"github.com/dmitrymomot/easyvalidator/pkg/config"
	"github.com/dmitrymomot/easyvalidator/pkg/httpserver"
	"github.com/dmitrymomot/easyvalidator/pkg/logger"
	"github.com/dmitrymomot/easyvalidator/pkg/requestid"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("validatord stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(logger.ParseEnvironment(cfg.Env), cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			slog.Warn("ignoring LOG_LEVEL", logger.Error(err))
		} else {
			opts = append(opts, logger.WithLevel(level))
		}
	}
	return logger.New(opts...)
}

func run(cfg appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openBackend(ctx, cfg.LookupBackend)
	if err != nil {
		return err
	}
	defer store.close()

	vopts := []validator.Option{
		validator.WithDateFormat(cfg.DateFormat),
		validator.WithDatetimeFormat(cfg.DatetimeFormat),
		validator.WithResolver(net.DefaultResolver),
	}
	if store.lookup != nil {
		vopts = append(vopts, validator.WithLookup(store.lookup))
	}

	cat, err := catalog.LoadDir(cfg.SchemaDir, vopts...)
	if err != nil {
		return err
	}
	log.Info("schemas loaded",
		slog.String("dir", cfg.SchemaDir),
		slog.Any("schemas", cat.Names()),
		logger.Backend(cfg.LookupBackend),
	)

	handler := api.New(cat,
		api.WithLogger(log),
		api.WithLookup(store.lookup),
		api.WithReadinessChecks(store.checks...),
		api.WithValidatorOptions(vopts...),
		api.WithBinderOptions(
			binder.WithMaxJSONSize(cfg.MaxJSONSize),
			binder.WithMaxMemory(cfg.MaxMemory),
		),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler.Routes())
}
