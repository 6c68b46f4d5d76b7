package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed rule invocation.
type ValidationError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrors lists failures in schema field order, then chain order.
// It implements error and matches ErrValidationFailed.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	var b strings.Builder
	b.WriteString(ErrValidationFailed.Error())
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (ve ValidationErrors) Is(target error) bool { return target == ErrValidationFailed }

func (ve *ValidationErrors) Add(err ValidationError) { *ve = append(*ve, err) }

func (ve ValidationErrors) IsEmpty() bool { return len(ve) == 0 }

// Has reports whether field failed at least one rule.
func (ve ValidationErrors) Has(field string) bool {
	return len(ve.GetErrors(field)) > 0
}

// GetErrors returns the failures of field in chain order.
func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Get returns the messages of field in chain order.
func (ve ValidationErrors) Get(field string) []string {
	var out []string
	for _, e := range ve.GetErrors(field) {
		out = append(out, e.Message)
	}
	return out
}

// Fields returns the failed fields in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var out []string
	seen := make(map[string]struct{}, len(ve))
	for _, e := range ve {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		out = append(out, e.Field)
	}
	return out
}

// Messages folds the failures into field -> rule -> message. A rule that
// appears twice in a chain keeps its last message.
func (ve ValidationErrors) Messages() map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, e := range ve {
		byRule, ok := out[e.Field]
		if !ok {
			byRule = make(map[string]string)
			out[e.Field] = byRule
		}
		byRule[e.Rule] = e.Message
	}
	return out
}

// Flatten folds the failures into field -> messages in chain order.
func (ve ValidationErrors) Flatten() map[string][]string {
	out := make(map[string][]string)
	for _, e := range ve {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// ExtractValidationErrors unwraps err into ValidationErrors, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return err != nil && errors.As(err, &ve)
}
