package binder

import (
	"net/http"

	"github.com/dmitrymomot/easyvalidator/pkg/file"
	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

func fromForm(r *http.Request) (validator.Record, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errorf(ErrInvalidForm, "%v", err)
	}
	return fromValues(r.PostForm), nil
}

func fromMultipart(r *http.Request, params map[string]string, maxMemory int64) (validator.Record, error) {
	if !validateBoundary(params["boundary"]) {
		return nil, errorf(ErrInvalidForm, "invalid boundary parameter")
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, errorf(ErrInvalidForm, "%v", err)
	}
	if r.MultipartForm == nil {
		return validator.Record{}, nil
	}

	rec := fromValues(r.MultipartForm.Value)
	for key, fhs := range r.MultipartForm.File {
		files, err := file.DescribeAll(fhs)
		if err != nil {
			return nil, errorf(ErrInvalidForm, "file %q: %v", key, err)
		}
		switch len(files) {
		case 0:
		case 1:
			rec[key] = files[0]
		default:
			rec[key] = files
		}
	}
	return rec, nil
}

// validateBoundary checks the RFC 2046 boundary syntax: 1 to 70 characters
// from a restricted set, not ending with a space.
func validateBoundary(b string) bool {
	if len(b) == 0 || len(b) > 70 || b[len(b)-1] == ' ' {
		return false
	}
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '\'' || c == '(' || c == ')' || c == '+' || c == '_' || c == ',' ||
			c == '-' || c == '.' || c == '/' || c == ':' || c == '=' || c == '?' || c == ' ':
		default:
			return false
		}
	}
	return true
}
