// Package requestid tags every validation request with a correlation id.
//
// Middleware reuses a client supplied X-Request-ID header when it is well
// formed and otherwise generates a UUID. The id is echoed in the response and
// stored in the request context, where LoggerExtractor picks it up so each
// "rule rejected value" log line can be tied to the request that caused it.
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
