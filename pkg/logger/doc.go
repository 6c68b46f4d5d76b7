// Package logger builds slog loggers for the validation service.
//
// New returns a *slog.Logger configured by Option functions: output format,
// level, static attributes and ContextExtractor callbacks that copy
// request-scoped values (for example the request id) from the context into
// every record.
//
//	log := logger.New(
//		logger.WithEnvironment(logger.ParseEnvironment(cfg.Env), "validatord"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.InfoContext(ctx, "schema loaded", logger.Schema("signup"))
//
// The attribute helpers (Field, Rule, Schema, Error, ...) keep key names
// consistent. Error and Errors return an empty attribute for nil errors, so
// they can be passed without a nil check.
package logger
