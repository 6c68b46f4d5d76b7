// Package validator checks flat input records against declarative rule
// chains.
//
// A schema maps each field name to a chain of rule invocations separated by
// "|". Each invocation is a rule name, optionally followed by ":" and a
// comma-separated parameter list:
//
//	schema := validator.NewSchema().
//		Field("username", "required|alpha_dash|max_length:20").
//		Field("birthday", "date_before:1990-12-12").
//		Field("avatar", "image|max:file,2MB").
//		Build()
//
//	v := validator.New(schema, map[string]any{"username": ""})
//	ok, err := v.Validate(ctx)
//	if err != nil {
//		// the schema is broken: unknown rule, missing or invalid parameter
//	}
//	if !ok {
//		fmt.Println(v.Messages()) // map[username:map[required:username is required]]
//	}
//
// # Evaluation
//
// Every rule of every field runs, in schema order and then chain order;
// evaluation never stops at the first failure. For each invocation exactly
// one of two phases runs: CheckNull when the value is empty (nil, "", an
// empty collection) and CheckValue otherwise. Most rules accept empty values,
// so "required" is the only way to reject a missing field.
//
// Data failures produce messages. Schema mistakes produce errors:
// RuleNotFoundError, RuleMissingParameterError and InvalidRuleParameterError
// abort the run and are returned by Validate. Schema.Compile reports them
// ahead of time.
//
// # Messages
//
// Each rule has a default message template with {NAME} placeholders. {FIELD}
// and {VALUE} are always available; rules add their own ({MIN}, {OTHER},
// {BEGIN}, ...). Templates can be replaced per field and rule in the schema
// or with WithMessages.
//
// # Extension
//
// Custom rules embed Base, implement CheckValue (and CheckNull when empty
// values must fail) and are registered per validator:
//
//	v := validator.New(schema, data, validator.WithRules(validator.Registry{
//		"even": {New: newEven},
//	}))
//
// Registrations never leak to other validators.
//
// # Capabilities
//
// unique, exist and unique_against consult a Lookup supplied with
// WithLookup; their templates may use {MODEL} (or {ENTITY}) and {COLUMN}.
// active_url resolves the host of the value through a Resolver supplied
// with WithResolver:
//
//	v := validator.New(schema, data, validator.WithResolver(net.DefaultResolver))
//
// A chain naming a capability rule fails construction with
// ErrLookupNotConfigured or ErrResolverNotConfigured when the capability is
// missing. The file rules read values implementing File; FileInfo is a
// ready-made implementation, and any slice of Files is accepted.
package validator
