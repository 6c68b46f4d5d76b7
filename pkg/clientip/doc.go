// Package clientip resolves the address of the client that sent a
// validation request, honouring common reverse proxy headers.
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
