package validator

import (
	"context"
	"slices"
	"strings"
)

// DefaultAcceptedFlags are the values accepted by "accepted" without parameters.
var DefaultAcceptedFlags = []string{"yes", "no", "true", "false", "0", "1"}

var booleanFlags = []string{"true", "false", "1", "0", "yes", "no", "on", "off"}

type requiredRule struct {
	Base
}

func newRequired(in Input) (Rule, error) {
	return &requiredRule{Base: NewBase(in, "{FIELD} is required")}, nil
}

func (r *requiredRule) CheckNull(context.Context) { r.Fail() }

func (r *requiredRule) CheckValue(context.Context) { r.SetStatus(true) }

// choiceRule checks membership of the value in a fixed set of strings.
type choiceRule struct {
	Base
	choices []string
	fold    bool
}

func (r *choiceRule) CheckValue(context.Context) {
	value := String(r.Value())
	if r.fold {
		r.SetStatus(slices.ContainsFunc(r.choices, func(c string) bool {
			return strings.EqualFold(c, value)
		}))
		return
	}
	r.SetStatus(slices.Contains(r.choices, value))
}

func newAccepted(in Input) (Rule, error) {
	flags := DefaultAcceptedFlags
	if len(in.Params) > 0 {
		flags = in.Params
	}
	r := &choiceRule{Base: NewBase(in, "{VALUE} of {FIELD} is not accepted in {FLAGS}"), choices: flags}
	r.SetPlaceholder("FLAGS", strings.Join(flags, ", "))
	return r, nil
}

func newSwitch(in Input) (Rule, error) {
	if len(in.Params) == 0 {
		return nil, missingParam(in.Name, "values")
	}
	r := &choiceRule{Base: NewBase(in, "{VALUE} of {FIELD} is not in [{SWITCH}]"), choices: in.Params}
	r.SetPlaceholder("SWITCH", strings.Join(in.Params, ","))
	return r, nil
}

func newBoolean(in Input) (Rule, error) {
	return &choiceRule{Base: NewBase(in, "{VALUE} of {FIELD} is not a boolean"), choices: booleanFlags, fold: true}, nil
}
