package validator

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Record is the flat input validated by a schema: field name -> value as supplied.
type Record map[string]any

// Get returns the value stored for field, or nil.
func (r Record) Get(field string) any {
	if r == nil {
		return nil
	}
	return r[field]
}

// Clone returns a deep copy of the record. Slices and nested maps are copied
// so that a validation run never observes later caller mutations.
func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case []File:
		return slices.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case map[string]string:
		return maps.Clone(t)
	default:
		return v
	}
}

// IsEmpty reports whether v counts as absent: nil, the empty string, a
// zero-length collection or a nil pointer. Numbers and booleans are never empty.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// String renders a value the way it appears in messages and string checks.
// Lists are joined with a comma.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = String(item)
		}
		return strings.Join(parts, ",")
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	if k := reflect.ValueOf(v).Kind(); k == reflect.Slice || k == reflect.Array {
		return strings.Join(List(v), ",")
	}
	return fmt.Sprint(v)
}

// List returns the elements of a list value. A plain string is treated as a
// comma-joined list; an empty string yields no elements.
func List(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []any:
		out := make([]string, len(t))
		for i, item := range t {
			out[i] = String(item)
		}
		return out
	case string:
		if t == "" {
			return nil
		}
		parts := strings.Split(t, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]string, rv.Len())
		for i := range out {
			out[i] = String(rv.Index(i).Interface())
		}
		return out
	}
	return []string{String(v)}
}

// Number returns the numeric reading of v. Booleans, lists and non-finite
// values are not numbers.
func Number(v any) (float64, bool) {
	switch v.(type) {
	case nil, bool, []string, []any:
		return 0, false
	case string:
		v = strings.TrimSpace(v.(string))
	case json.Number:
		n, err := v.(json.Number).Float64()
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	}
	n, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
