package validator

import (
	"maps"
	"slices"
)

// Schema is an ordered, immutable mapping of field name to rule chain,
// with optional per-field, per-rule message templates. Build one with
// NewSchema or LoadSchema.
type Schema struct {
	fields   []string
	chains   map[string]string
	messages map[string]map[string]string
}

// SchemaBuilder accumulates schema entries in declaration order.
type SchemaBuilder struct {
	fields   []string
	chains   map[string]string
	messages map[string]map[string]string
}

// NewSchema starts an empty schema.
//
//	schema := validator.NewSchema().
//		Field("username", "required|max_length:20").
//		Field("birthday", "date_before:1990-12-12").
//		Message("username", "required", "username is required").
//		Build()
func NewSchema() *SchemaBuilder {
	return &SchemaBuilder{
		chains:   make(map[string]string),
		messages: make(map[string]map[string]string),
	}
}

// Field declares the rule chain of a field. Declaring a field again replaces
// its chain and keeps its original position.
func (b *SchemaBuilder) Field(name, chain string) *SchemaBuilder {
	if _, ok := b.chains[name]; !ok {
		b.fields = append(b.fields, name)
	}
	b.chains[name] = chain
	return b
}

// Message overrides the template used when rule fails on field.
func (b *SchemaBuilder) Message(field, rule, template string) *SchemaBuilder {
	if b.messages[field] == nil {
		b.messages[field] = make(map[string]string)
	}
	b.messages[field][rule] = template
	return b
}

// Messages overrides several templates of one field at once.
func (b *SchemaBuilder) Messages(field string, templates map[string]string) *SchemaBuilder {
	for rule, template := range templates {
		b.Message(field, rule, template)
	}
	return b
}

// Build returns the schema. Later builder calls do not affect it.
func (b *SchemaBuilder) Build() *Schema {
	return &Schema{
		fields:   slices.Clone(b.fields),
		chains:   maps.Clone(b.chains),
		messages: cloneMessages(b.messages),
	}
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	return slices.Clone(s.fields)
}

// Chain returns the raw rule chain of field.
func (s *Schema) Chain(field string) (string, bool) {
	chain, ok := s.chains[field]
	return chain, ok
}

// Message returns the template override for rule on field, or "".
func (s *Schema) Message(field, rule string) string {
	return s.messages[field][rule]
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Compile parses every chain and constructs every rule once without
// checking any value, so configuration errors surface before the first
// request. The options are the ones later passed to New.
func (s *Schema) Compile(opts ...Option) error {
	return New(s, nil, opts...).compile()
}

func cloneMessages(in map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(in))
	for field, rules := range in {
		out[field] = maps.Clone(rules)
	}
	return out
}
