package validator

import (
	"context"
	"time"

	"github.com/ncruces/go-strftime"
)

// Default strftime patterns for date and datetime values.
const (
	DefaultDateFormat     = "%Y-%m-%d"
	DefaultDatetimeFormat = "%Y-%m-%d %H:%M:%S"
)

// dateComparison describes one of the *_before / *_after family members.
type dateComparison struct {
	datetime    bool
	placeholder string
	template    string
	ok          func(value, bound time.Time) bool
}

var (
	dateBefore = dateComparison{
		placeholder: "DATE",
		template:    "{VALUE} of {FIELD} is not before {DATE}",
		ok:          func(v, b time.Time) bool { return v.Before(b) },
	}
	dateAfter = dateComparison{
		placeholder: "DATE",
		template:    "{VALUE} of {FIELD} is not after {DATE}",
		ok:          func(v, b time.Time) bool { return v.After(b) },
	}
	dateBeforeEqual = dateComparison{
		placeholder: "DATE",
		template:    "{VALUE} of {FIELD} is not before or equal to {DATE}",
		ok:          func(v, b time.Time) bool { return !v.After(b) },
	}
	dateAfterEqual = dateComparison{
		placeholder: "DATE",
		template:    "{VALUE} of {FIELD} is not after or equal to {DATE}",
		ok:          func(v, b time.Time) bool { return !v.Before(b) },
	}

	datetimeBefore      = asDatetime(dateBefore)
	datetimeAfter       = asDatetime(dateAfter)
	datetimeBeforeEqual = asDatetime(dateBeforeEqual)
	datetimeAfterEqual  = asDatetime(dateAfterEqual)
)

func asDatetime(c dateComparison) dateComparison {
	c.datetime = true
	c.placeholder = "DATETIME"
	c.template = Format(c.template, map[string]string{"DATE": "{DATETIME}"})
	return c
}

// dateRule parses the value with a strftime pattern and, optionally,
// checks the parsed time.
type dateRule struct {
	Base
	format string
	ok     func(time.Time) bool
}

func (r *dateRule) CheckValue(context.Context) {
	t, err := strftime.Parse(r.format, String(r.Value()))
	if err != nil {
		r.Fail()
		return
	}
	r.SetStatus(r.ok == nil || r.ok(t))
}

func defaultFormat(in Input, datetime bool) string {
	if datetime {
		if in.DatetimeFormat != "" {
			return in.DatetimeFormat
		}
		return DefaultDatetimeFormat
	}
	if in.DateFormat != "" {
		return in.DateFormat
	}
	return DefaultDateFormat
}

// formatParam returns the pattern at position i, or fallback, after checking
// that it is a valid strftime pattern.
func formatParam(in Input, i int, param, fallback string) (string, error) {
	format, ok := in.Param(i)
	if !ok {
		format = fallback
	}
	if _, err := strftime.Layout(format); err != nil {
		return "", invalidParam(in.Name, param, format, err.Error())
	}
	return format, nil
}

func boundParam(in Input, i int, param, format string) (time.Time, string, error) {
	raw, ok := in.Param(i)
	if !ok {
		return time.Time{}, "", missingParam(in.Name, param)
	}
	t, err := strftime.Parse(format, raw)
	if err != nil {
		return time.Time{}, "", invalidParam(in.Name, param, raw, "does not match "+format)
	}
	return t, raw, nil
}

func newDate(in Input) (Rule, error) {
	format, err := formatParam(in, 0, "format", defaultFormat(in, false))
	if err != nil {
		return nil, err
	}
	return &dateRule{Base: NewBase(in, "{VALUE} of {FIELD} is not a valid date"), format: format}, nil
}

func newDatetime(in Input) (Rule, error) {
	format, err := formatParam(in, 0, "format", defaultFormat(in, true))
	if err != nil {
		return nil, err
	}
	return &dateRule{Base: NewBase(in, "{VALUE} of {FIELD} is not a valid datetime"), format: format}, nil
}

// newDateCompare handles "<rule>:bound[,fieldFormat[,paramFormat]]". The
// parameter format defaults to the field format.
func newDateCompare(c dateComparison) Constructor {
	return func(in Input) (Rule, error) {
		fieldFormat, err := formatParam(in, 1, "field_format", defaultFormat(in, c.datetime))
		if err != nil {
			return nil, err
		}
		paramFormat, err := formatParam(in, 2, "param_format", fieldFormat)
		if err != nil {
			return nil, err
		}
		bound, raw, err := boundParam(in, 0, "date", paramFormat)
		if err != nil {
			return nil, err
		}
		r := &dateRule{
			Base:   NewBase(in, c.template),
			format: fieldFormat,
			ok:     func(t time.Time) bool { return c.ok(t, bound) },
		}
		r.SetPlaceholder(c.placeholder, raw)
		return r, nil
	}
}

// newDateRange handles "<rule>:begin,end[,fieldFormat[,paramFormat]]".
// Both ends are inclusive.
func newDateRange(datetime bool) Constructor {
	template := "{VALUE} of {FIELD} is not in range of {BEGIN} to {END}"
	return func(in Input) (Rule, error) {
		fieldFormat, err := formatParam(in, 2, "field_format", defaultFormat(in, datetime))
		if err != nil {
			return nil, err
		}
		paramFormat, err := formatParam(in, 3, "param_format", fieldFormat)
		if err != nil {
			return nil, err
		}
		begin, rawBegin, err := boundParam(in, 0, "begin", paramFormat)
		if err != nil {
			return nil, err
		}
		end, rawEnd, err := boundParam(in, 1, "end", paramFormat)
		if err != nil {
			return nil, err
		}
		if begin.After(end) {
			return nil, invalidParam(in.Name, "begin", rawBegin, "after end "+rawEnd)
		}
		r := &dateRule{
			Base:   NewBase(in, template),
			format: fieldFormat,
			ok: func(t time.Time) bool {
				return !t.Before(begin) && !t.After(end)
			},
		}
		r.SetPlaceholder("BEGIN", rawBegin)
		r.SetPlaceholder("END", rawEnd)
		return r, nil
	}
}
