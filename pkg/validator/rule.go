package validator

import (
	"context"
	"maps"
)

// Rule is one validation check bound to a single field value.
//
// Exactly one of CheckNull or CheckValue runs per invocation: CheckNull when
// the value is empty (see IsEmpty), CheckValue otherwise. Neither may panic
// on malformed input; they record a failed status instead.
type Rule interface {
	CheckNull(ctx context.Context)
	CheckValue(ctx context.Context)
	Status() bool
	Message() string
}

// Constructor builds a rule instance for one invocation. It returns a
// configuration error when the invocation parameters are missing or invalid.
type Constructor func(in Input) (Rule, error)

// Input is everything a constructor receives for one invocation.
type Input struct {
	// Name is the rule name as written in the chain.
	Name   string
	Field  string
	Value  any
	Params []string
	// Record is the whole input record; rules must not modify it.
	Record Record
	// Message overrides the rule's default template when non-empty.
	Message string

	Lookup         Lookup
	Resolver       Resolver
	DateFormat     string
	DatetimeFormat string
}

// Param returns the i-th parameter, if present and non-blank.
func (in Input) Param(i int) (string, bool) {
	if i < 0 || i >= len(in.Params) || in.Params[i] == "" {
		return "", false
	}
	return in.Params[i], true
}

// Base implements the bookkeeping shared by all rules. Embed it and
// implement CheckValue; override CheckNull to reject empty values.
type Base struct {
	name         string
	field        string
	value        any
	params       []string
	record       Record
	template     string
	placeholders map[string]string
	status       bool
	err          error
}

// NewBase prepares the shared state for a rule. template is the rule's
// default message, replaced by in.Message when one is supplied.
func NewBase(in Input, template string) Base {
	if in.Message != "" {
		template = in.Message
	}
	return Base{
		name:     in.Name,
		field:    in.Field,
		value:    in.Value,
		params:   in.Params,
		record:   in.Record,
		template: template,
		placeholders: map[string]string{
			"FIELD": in.Field,
			"VALUE": String(in.Value),
		},
		status: true,
	}
}

// CheckNull accepts empty values.
func (b *Base) CheckNull(context.Context) {}

func (b *Base) Status() bool { return b.status }

// Message returns the template with the rule's placeholders substituted.
func (b *Base) Message() string { return Format(b.template, b.placeholders) }

// SetStatus records the outcome of a check.
func (b *Base) SetStatus(ok bool) { b.status = ok }

// Fail marks the check as failed.
func (b *Base) Fail() { b.status = false }

// FailWith marks the check as failed because of an infrastructure error.
func (b *Base) FailWith(err error) {
	b.status = false
	b.err = err
}

// Err returns the infrastructure error recorded by FailWith.
func (b *Base) Err() error { return b.err }

// SetPlaceholder registers a rule-specific {NAME} token.
func (b *Base) SetPlaceholder(name, value string) { b.placeholders[name] = value }

// Placeholders returns a copy of the tokens available to the template.
func (b *Base) Placeholders() map[string]string { return maps.Clone(b.placeholders) }

func (b *Base) Name() string     { return b.name }
func (b *Base) Field() string    { return b.field }
func (b *Base) Value() any       { return b.value }
func (b *Base) Params() []string { return b.params }

// Other returns another field of the record.
func (b *Base) Other(field string) any { return b.record.Get(field) }

// Check runs the phase matching value and reports the resulting status.
func Check(ctx context.Context, r Rule, value any) bool {
	if IsEmpty(value) {
		r.CheckNull(ctx)
	} else {
		r.CheckValue(ctx)
	}
	return r.Status()
}

type errorer interface {
	Err() error
}
