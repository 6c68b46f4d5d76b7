package validator

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/easyvalidator/pkg/logger"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	rules          Registry
	exclusive      bool
	lookup         Lookup
	hosts          Resolver
	log            *slog.Logger
	dateFormat     string
	datetimeFormat string
	messages       map[string]map[string]string
}

// WithRules adds run-scoped rules. They shadow built-in rules of the same
// name for this validator only.
func WithRules(rules Registry) Option {
	return func(o *options) {
		if o.rules == nil {
			o.rules = make(Registry, len(rules))
		}
		maps.Copy(o.rules, rules)
	}
}

// WithOnlyRules restricts the validator to the given rules; the built-in
// catalogue is not consulted.
func WithOnlyRules(rules Registry) Option {
	return func(o *options) {
		o.rules = maps.Clone(rules)
		o.exclusive = true
	}
}

// WithLookup sets the persistence capability used by unique, exist and
// unique_against.
func WithLookup(l Lookup) Option {
	return func(o *options) { o.lookup = l }
}

// WithResolver sets the host resolver used by active_url. *net.Resolver
// satisfies it.
func WithResolver(r Resolver) Option {
	return func(o *options) { o.hosts = r }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithDateFormat sets the strftime layout date rules use when the chain
// does not name one.
func WithDateFormat(format string) Option {
	return func(o *options) {
		if format != "" {
			o.dateFormat = format
		}
	}
}

// WithDatetimeFormat is WithDateFormat for the datetime rules.
func WithDatetimeFormat(format string) Option {
	return func(o *options) {
		if format != "" {
			o.datetimeFormat = format
		}
	}
}

// WithMessages overrides message templates per field and rule. They take
// precedence over the schema's own overrides.
func WithMessages(messages map[string]map[string]string) Option {
	return func(o *options) {
		if o.messages == nil {
			o.messages = make(map[string]map[string]string, len(messages))
		}
		for field, rules := range messages {
			if o.messages[field] == nil {
				o.messages[field] = make(map[string]string, len(rules))
			}
			maps.Copy(o.messages[field], rules)
		}
	}
}

// Result is the serialisable outcome of a run.
type Result struct {
	Status   bool                         `json:"status"`
	Messages map[string]map[string]string `json:"messages,omitempty"`
	Errors   map[string][]string          `json:"errors,omitempty"`
}

// Validator applies a schema to one input record.
//
// A Validator is not safe for concurrent use; create one per record.
// Validate may be called repeatedly and every run starts from a clean state.
type Validator struct {
	schema *Schema
	data   Record
	opts   options
	rules  ruleSet

	failures ValidationErrors
}

// New binds schema to data. data is copied; the caller's map is never
// modified by rules or by the validator.
func New(schema *Schema, data map[string]any, opts ...Option) *Validator {
	o := options{
		log:            slog.New(slog.DiscardHandler),
		dateFormat:     DefaultDateFormat,
		datetimeFormat: DefaultDatetimeFormat,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if schema == nil {
		schema = NewSchema().Build()
	}
	return &Validator{
		schema: schema,
		data:   Record(data).Clone(),
		opts:   o,
		rules:  ruleSet{overrides: o.rules, exclusive: o.exclusive},
	}
}

// Validate runs every rule of every field, in schema order, without
// stopping at the first failure. It reports whether all rules passed.
//
// A non-nil error means the schema itself is broken (unknown rule, missing
// or invalid parameter); the run is aborted and no messages are kept.
func (v *Validator) Validate(ctx context.Context) (bool, error) {
	v.failures = nil
	record := v.data.Clone()

	for _, field := range v.schema.fields {
		invs, err := ParseChain(v.schema.chains[field])
		if err != nil {
			return v.abort(ctx, field, "", err)
		}
		value := record.Get(field)

		for _, inv := range invs {
			rule, err := v.build(inv, field, value, record)
			if err != nil {
				return v.abort(ctx, field, inv.Name, err)
			}
			if Check(ctx, rule, value) {
				continue
			}

			msg := rule.Message()
			v.failures.Add(ValidationError{Field: field, Rule: inv.Name, Message: msg})

			if e, ok := rule.(errorer); ok && e.Err() != nil {
				v.opts.log.ErrorContext(ctx, "rule check failed",
					logger.Field(field),
					logger.Rule(inv.Name),
					logger.Error(e.Err()),
				)
				continue
			}
			v.opts.log.DebugContext(ctx, "rule rejected value",
				logger.Field(field),
				logger.Rule(inv.Name),
				slog.String("message", msg),
			)
		}
	}

	return v.failures.IsEmpty(), nil
}

// compile constructs every rule with an empty value and discards it.
func (v *Validator) compile() error {
	record := Record{}
	for _, field := range v.schema.fields {
		invs, err := ParseChain(v.schema.chains[field])
		if err != nil {
			return err
		}
		for _, inv := range invs {
			if _, err := v.build(inv, field, nil, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *Validator) build(inv Invocation, field string, value any, record Record) (Rule, error) {
	def, err := v.rules.resolve(inv.Name)
	if err != nil {
		return nil, err
	}
	return def.New(Input{
		Name:           inv.Name,
		Field:          field,
		Value:          value,
		Params:         inv.Params(def.RawParams),
		Record:         record,
		Message:        v.message(field, inv.Name),
		Lookup:         v.opts.lookup,
		Resolver:       v.opts.hosts,
		DateFormat:     v.opts.dateFormat,
		DatetimeFormat: v.opts.datetimeFormat,
	})
}

func (v *Validator) message(field, rule string) string {
	if msg := v.opts.messages[field][rule]; msg != "" {
		return msg
	}
	return v.schema.Message(field, rule)
}

func (v *Validator) abort(ctx context.Context, field, rule string, err error) (bool, error) {
	v.failures = nil
	v.opts.log.ErrorContext(ctx, "invalid validation schema",
		logger.Field(field),
		logger.Rule(rule),
		logger.Error(err),
	)
	return false, err
}

// Messages returns field -> rule -> message for the last run. When a rule
// name repeats within a chain, the last failure wins.
func (v *Validator) Messages() map[string]map[string]string {
	return v.failures.Messages()
}

// Errors returns field -> messages for the last run, in chain order.
func (v *Validator) Errors() map[string][]string {
	return v.failures.Flatten()
}

// Get returns the messages recorded for field in the last run.
func (v *Validator) Get(field string) []string {
	return v.failures.Get(field)
}

// Err returns the failures of the last run as ValidationErrors, or nil.
func (v *Validator) Err() error {
	if v.failures.IsEmpty() {
		return nil
	}
	out := make(ValidationErrors, len(v.failures))
	copy(out, v.failures)
	return out
}

// Result returns the outcome of the last run.
func (v *Validator) Result() Result {
	return Result{
		Status:   v.failures.IsEmpty(),
		Messages: v.Messages(),
		Errors:   v.Errors(),
	}
}

// Validate is a convenience wrapper that builds a validator, runs it once
// and returns its result.
func Validate(ctx context.Context, schema *Schema, data map[string]any, opts ...Option) (Result, error) {
	v := New(schema, data, opts...)
	if _, err := v.Validate(ctx); err != nil {
		return Result{}, err
	}
	return v.Result(), nil
}
