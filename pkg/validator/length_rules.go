package validator

import (
	"context"
	"strconv"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// Size kinds accepted as the first parameter of size, min and max.
const (
	KindString = "string"
	KindNumber = "number"
	KindArray  = "array"
	KindFile   = "file"
)

type lengthRule struct {
	Base
	limit int
	ok    func(length, limit int) bool
}

func (r *lengthRule) CheckValue(context.Context) {
	r.SetStatus(r.ok(utf8.RuneCountInString(String(r.Value())), r.limit))
}

func newLength(in Input, param, placeholder, template string, ok func(length, limit int) bool) (Rule, error) {
	raw, present := in.Param(0)
	if !present {
		return nil, missingParam(in.Name, param)
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return nil, invalidParam(in.Name, param, raw, "expected a non-negative integer")
	}
	r := &lengthRule{Base: NewBase(in, template), limit: limit, ok: ok}
	r.SetPlaceholder(placeholder, raw)
	return r, nil
}

func newMinLength(in Input) (Rule, error) {
	return newLength(in, "min", "MIN", "{VALUE} of {FIELD} is shorter than {MIN}",
		func(length, limit int) bool { return length >= limit })
}

func newMaxLength(in Input) (Rule, error) {
	return newLength(in, "max", "MAX", "{VALUE} of {FIELD} is longer than {MAX}",
		func(length, limit int) bool { return length <= limit })
}

type betweenRule struct {
	Base
	min, max float64
}

func newBetween(in Input) (Rule, error) {
	lo, ok := in.Param(0)
	if !ok {
		return nil, missingParam(in.Name, "min")
	}
	hi, ok := in.Param(1)
	if !ok {
		return nil, missingParam(in.Name, "max")
	}
	minValue, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return nil, invalidParam(in.Name, "min", lo, "expected a number")
	}
	maxValue, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return nil, invalidParam(in.Name, "max", hi, "expected a number")
	}
	if minValue > maxValue {
		return nil, invalidParam(in.Name, "min", lo, "greater than max")
	}
	r := &betweenRule{Base: NewBase(in, "{VALUE} of {FIELD} is not between {MIN} and {MAX}"), min: minValue, max: maxValue}
	r.SetPlaceholder("MIN", lo)
	r.SetPlaceholder("MAX", hi)
	return r, nil
}

func (r *betweenRule) CheckValue(context.Context) {
	n, ok := Number(r.Value())
	r.SetStatus(ok && n >= r.min && n <= r.max)
}

// sizeRule compares the measured size of a value, by kind, against a bound.
type sizeRule struct {
	Base
	kind  string
	bound float64
	ok    func(size, bound float64) bool
}

func (r *sizeRule) CheckValue(context.Context) {
	size, ok := measure(r.kind, r.Value())
	r.SetStatus(ok && r.ok(size, r.bound))
}

func newSizeRule(in Input, placeholder, template string, ok func(size, bound float64) bool) (Rule, error) {
	kind, present := in.Param(0)
	if !present {
		return nil, missingParam(in.Name, "kind")
	}
	raw, present := in.Param(1)
	if !present {
		return nil, missingParam(in.Name, "size")
	}
	switch kind {
	case KindString, KindNumber, KindArray, KindFile:
	default:
		return nil, invalidParam(in.Name, "kind", kind, "expected one of string, number, array, file")
	}
	bound, err := parseBound(kind, raw)
	if err != nil {
		return nil, invalidParam(in.Name, "size", raw, err.Error())
	}
	r := &sizeRule{Base: NewBase(in, template), kind: kind, bound: bound, ok: ok}
	r.SetPlaceholder("KIND", kind)
	r.SetPlaceholder(placeholder, raw)
	return r, nil
}

func newSize(in Input) (Rule, error) {
	return newSizeRule(in, "SIZE", "size of {FIELD} should be {SIZE}",
		func(size, bound float64) bool { return size == bound })
}

func newMin(in Input) (Rule, error) {
	return newSizeRule(in, "MIN", "size of {FIELD} should not be less than {MIN}",
		func(size, bound float64) bool { return size >= bound })
}

func newMax(in Input) (Rule, error) {
	return newSizeRule(in, "MAX", "size of {FIELD} should not be greater than {MAX}",
		func(size, bound float64) bool { return size <= bound })
}

// parseBound reads a size bound. File bounds accept byte units such as 2MB or 512KiB.
func parseBound(kind, raw string) (float64, error) {
	if kind == KindFile {
		n, err := humanize.ParseBytes(raw)
		if err != nil {
			return 0, err
		}
		return float64(n), nil
	}
	return strconv.ParseFloat(raw, 64)
}

// measure returns the size of v for the given kind: rune count for strings,
// the numeric value for numbers, element count for arrays and the byte size
// for files (summed for multi-file values).
func measure(kind string, v any) (float64, bool) {
	switch kind {
	case KindString:
		return float64(utf8.RuneCountInString(String(v))), true
	case KindNumber:
		return Number(v)
	case KindArray:
		return float64(len(List(v))), true
	case KindFile:
		files, ok := Files(v)
		if !ok {
			return 0, false
		}
		var total int64
		for _, f := range files {
			total += f.Size()
		}
		return float64(total), true
	}
	return 0, false
}
