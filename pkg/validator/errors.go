package validator

import (
	"errors"
	"fmt"
)

// Configuration errors. They describe a broken schema, never bad input data.
var (
	// ErrRuleNotFound is matched by *RuleNotFoundError.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrMissingParameter is matched by *RuleMissingParameterError.
	ErrMissingParameter = errors.New("missing rule parameter")

	// ErrInvalidParameter is matched by *InvalidRuleParameterError.
	ErrInvalidParameter = errors.New("invalid rule parameter")

	// ErrInvalidChain is returned when a rule chain contains an element without a rule name.
	ErrInvalidChain = errors.New("invalid rule chain")

	// ErrInvalidSchema is returned when a schema document cannot be loaded.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrLookupNotConfigured is returned when a store-backed rule is used without a Lookup.
	ErrLookupNotConfigured = errors.New("lookup capability is not configured")

	// ErrResolverNotConfigured is returned when active_url is used without a Resolver.
	ErrResolverNotConfigured = errors.New("resolver capability is not configured")
)

// ErrValidationFailed is the generic data validation failure.
var ErrValidationFailed = errors.New("validation failed")

// RuleNotFoundError reports a rule name absent from both the run-scoped
// registry and the default catalogue.
type RuleNotFoundError struct {
	Name string
}

func (e *RuleNotFoundError) Error() string {
	return fmt.Sprintf("rule %q not found", e.Name)
}

func (e *RuleNotFoundError) Is(target error) bool {
	return target == ErrRuleNotFound
}

// RuleMissingParameterError reports a required rule parameter that was not supplied.
type RuleMissingParameterError struct {
	Rule      string
	Parameter string
}

func (e *RuleMissingParameterError) Error() string {
	return fmt.Sprintf("rule %q: missing parameter %q", e.Rule, e.Parameter)
}

func (e *RuleMissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// InvalidRuleParameterError reports a parameter outside its declared enum or type.
type InvalidRuleParameterError struct {
	Rule      string
	Parameter string
	Value     string
	Reason    string
}

func (e *InvalidRuleParameterError) Error() string {
	msg := fmt.Sprintf("rule %q: invalid parameter %s=%q", e.Rule, e.Parameter, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidRuleParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func missingParam(rule, param string) error {
	return &RuleMissingParameterError{Rule: rule, Parameter: param}
}

func invalidParam(rule, param, value, reason string) error {
	return &InvalidRuleParameterError{Rule: rule, Parameter: param, Value: value, Reason: reason}
}

// IsConfigError reports whether err is a schema configuration error
// as opposed to an infrastructure failure.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrRuleNotFound) ||
		errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrInvalidChain) ||
		errors.Is(err, ErrInvalidSchema) ||
		errors.Is(err, ErrLookupNotConfigured) ||
		errors.Is(err, ErrResolverNotConfigured)
}
