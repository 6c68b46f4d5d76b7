// Package binder turns an HTTP request into a validator.Record.
//
// A schema names fields, not Go struct members, so binder does not decode
// into typed structs: it produces the flat field -> value map the rule
// chains read.
//
// # Sources
//
// Record dispatches on the Content-Type header:
//
//   - application/json: the body must be a JSON object. Nested values are
//     kept as decoded and numbers stay json.Number, so large integers keep
//     their digits in messages.
//   - application/x-www-form-urlencoded: the form fields of the body.
//   - multipart/form-data: form fields plus uploads. Uploads are described
//     with pkg/file, so file rules see the name, size and sniffed MIME type
//     but never the content.
//   - no Content-Type and no body: the query string, which is how GET
//     requests are validated.
//
// A field sent once becomes a string and a field sent several times a
// []string; uploads follow the same rule with validator.FileInfo and
// []validator.File. This is what the list rules (min:array, size:array)
// and the file rules expect.
//
// # Usage
//
//	func validate(w http.ResponseWriter, r *http.Request) {
//		rec, err := binder.Record(r, binder.WithMaxJSONSize(64<<10))
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		ok, err := validator.New(schema, rec).Validate(r.Context())
//		// ...
//	}
//
// # Limits
//
// JSON bodies are read through a limit of DefaultMaxJSONSize (1MB) unless
// WithMaxJSONSize says otherwise. Multipart bodies keep DefaultMaxMemory
// (10MB) in memory and spill the rest to temporary files; WithMaxMemory
// changes the threshold. The multipart boundary is checked against RFC 2046
// before parsing.
//
// # Error Handling
//
// Every error wraps one sentinel, so callers map them to statuses with
// errors.Is:
//
//   - ErrUnsupportedMediaType: unknown or malformed Content-Type (415).
//   - ErrMissingContentType: a body without a Content-Type (400).
//   - ErrFailedToParseJSON: invalid JSON, a body over the limit or a
//     top-level value that is not an object (400).
//   - ErrInvalidForm: an unreadable form or multipart body (400).
package binder
