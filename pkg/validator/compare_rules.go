package validator

import "context"

// ConfirmationSuffix names the companion field checked by "confirmed".
const ConfirmationSuffix = "_confirmation"

type fieldCompareRule struct {
	Base
	other string
	equal bool
}

func (r *fieldCompareRule) CheckValue(context.Context) {
	same := String(r.Value()) == String(r.Other(r.other))
	r.SetStatus(same == r.equal)
}

func newFieldCompare(in Input, template string, equal bool) (Rule, error) {
	other, ok := in.Param(0)
	if !ok {
		return nil, missingParam(in.Name, "field")
	}
	r := &fieldCompareRule{Base: NewBase(in, template), other: other, equal: equal}
	r.SetPlaceholder("OTHER", other)
	return r, nil
}

func newSame(in Input) (Rule, error) {
	return newFieldCompare(in, "{VALUE} of {FIELD} is not the same as {OTHER}", true)
}

func newDifferent(in Input) (Rule, error) {
	return newFieldCompare(in, "{VALUE} of {FIELD} should be different from {OTHER}", false)
}

func newConfirmed(in Input) (Rule, error) {
	other := in.Field + ConfirmationSuffix
	r := &fieldCompareRule{Base: NewBase(in, "{FIELD} confirmation does not match"), other: other, equal: true}
	r.SetPlaceholder("OTHER", other)
	return r, nil
}
