// Package handler renders HTTP responses for the validation API.
//
// Handlers return a Response instead of writing to the http.ResponseWriter
// directly. Wrap turns such a function into an http.HandlerFunc and routes a
// nil response or a failed render to an ErrorHandler.
//
// # JSON envelope
//
// Every body has the same shape:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "..."}}
//
// Empty members are omitted. JSON sets data and answers 200 unless
// WithJSONStatus says otherwise:
//
//	return handler.JSON(schemaInfo)
//	return handler.JSON(status, handler.WithJSONStatus(http.StatusServiceUnavailable))
//
// # Errors
//
// JSONError maps an error to a status code and an ErrorDetail:
//
//   - validator.ValidationErrors answer 422 with code "validation_error";
//     details holds field -> messages and rules holds field -> rule -> message.
//   - HTTPError answers its own Code with its Key as the code. The message is
//     the cause set with WithCause, or the status text.
//   - Any other error answers 500 with code "internal_error".
//
// For example:
//
//	schema, err := cat.Get(name)
//	if errors.Is(err, catalog.ErrSchemaNotFound) {
//		return handler.JSONError(handler.ErrNotFound.WithCause(err))
//	}
//
//	ok, err := v.Validate(ctx)
//	if !ok && err == nil {
//		return handler.JSONError(v.Err())
//	}
//
// # Error handler
//
// NewErrorHandler logs the error with the request id, at warn level for 4xx
// and error level otherwise, then renders it with JSONError:
//
//	r.Post("/validate/{schema}", handler.Wrap(validate,
//		handler.WithErrorHandler(handler.NewErrorHandler(log)),
//	))
package handler
