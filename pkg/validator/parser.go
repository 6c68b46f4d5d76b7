package validator

import (
	"fmt"
	"strings"
)

// Invocation is one parsed element of a rule chain.
type Invocation struct {
	Name      string
	RawParams string
}

func (i Invocation) String() string {
	if i.RawParams == "" {
		return i.Name
	}
	return i.Name + ":" + i.RawParams
}

// Params returns the invocation parameters. In raw mode the whole parameter
// substring is a single element; otherwise it is split on commas and trimmed.
// An absent parameter substring yields no parameters.
func (i Invocation) Params(raw bool) []string {
	if i.RawParams == "" {
		return nil
	}
	if raw {
		return []string{i.RawParams}
	}
	parts := strings.Split(i.RawParams, ",")
	for idx := range parts {
		parts[idx] = strings.TrimSpace(parts[idx])
	}
	return parts
}

// ParseChain splits a rule chain such as "required|date_before:1990-12-12"
// into invocations, in chain order. The name is cut at the first colon only,
// so parameters may contain colons. Blank chain elements are ignored.
// ParseChain does not resolve rule names.
func ParseChain(chain string) ([]Invocation, error) {
	elems := strings.Split(chain, "|")
	out := make([]Invocation, 0, len(elems))
	for _, elem := range elems {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		name, raw, _ := strings.Cut(elem, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: element %q has no rule name", ErrInvalidChain, elem)
		}
		out = append(out, Invocation{Name: name, RawParams: strings.TrimSpace(raw)})
	}
	return out, nil
}
