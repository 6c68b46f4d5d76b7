package binder

import (
	"mime"
	"net/http"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

const (
	// DefaultMaxMemory is the part of a multipart body kept in memory (10MB).
	DefaultMaxMemory = 10 << 20
	// DefaultMaxJSONSize is the largest accepted JSON body (1MB).
	DefaultMaxJSONSize = 1 << 20
)

// Option configures Record.
type Option func(*options)

type options struct {
	maxMemory   int64
	maxJSONSize int64
}

// WithMaxMemory sets the in-memory part of multipart parsing.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithMaxJSONSize sets the largest accepted JSON body.
func WithMaxJSONSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxJSONSize = n
		}
	}
}

// Record extracts the input record of r according to its Content-Type:
//
//   - application/json: a JSON object; nested values are kept as decoded.
//   - application/x-www-form-urlencoded: form fields.
//   - multipart/form-data: form fields plus uploads as validator.FileInfo.
//   - no body (GET, HEAD, DELETE without Content-Type): the query string.
//
// A field sent once becomes a string, a field sent several times a []string.
// Uploads follow the same rule with FileInfo and []validator.File.
func Record(r *http.Request, opts ...Option) (validator.Record, error) {
	o := options{maxMemory: DefaultMaxMemory, maxJSONSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&o)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		if r.ContentLength > 0 {
			return nil, ErrMissingContentType
		}
		return fromValues(r.URL.Query()), nil
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, errorf(ErrUnsupportedMediaType, "malformed content type %q", contentType)
	}

	switch mediaType {
	case "application/json":
		return fromJSON(r, o.maxJSONSize)
	case "application/x-www-form-urlencoded":
		return fromForm(r)
	case "multipart/form-data":
		return fromMultipart(r, params, o.maxMemory)
	default:
		return nil, errorf(ErrUnsupportedMediaType, "got %s", mediaType)
	}
}

// fromValues folds url.Values-like maps into a record.
func fromValues(values map[string][]string) validator.Record {
	rec := make(validator.Record, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			rec[key] = vals[0]
		default:
			rec[key] = vals
		}
	}
	return rec
}
