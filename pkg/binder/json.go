package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

// fromJSON decodes a JSON object body. Numbers stay json.Number so that
// large integers keep their digits in messages.
func fromJSON(r *http.Request, maxSize int64) (validator.Record, error) {
	if r.Body == nil {
		return nil, errorf(ErrFailedToParseJSON, "empty body")
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSize+1))
	if err != nil {
		return nil, errorf(ErrFailedToParseJSON, "read body: %v", err)
	}
	if int64(len(body)) > maxSize {
		return nil, errorf(ErrFailedToParseJSON, "request body too large (max %d bytes)", maxSize)
	}
	if len(body) == 0 {
		return nil, errorf(ErrFailedToParseJSON, "empty body")
	}

	var rec map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errorf(ErrFailedToParseJSON, "body must be a JSON object")
		}
		return nil, errorf(ErrFailedToParseJSON, "%v", err)
	}
	if rec == nil {
		return nil, errorf(ErrFailedToParseJSON, "body must be a JSON object")
	}
	return validator.Record(rec), nil
}
