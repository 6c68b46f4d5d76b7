package validator

import (
	"context"
	"fmt"
)

// Lookup is the persistence capability consumed by unique, exist and
// unique_against. kind names the entity (table, collection, key prefix) and
// field the attribute compared with value. Hosts adapt their store to it.
type Lookup interface {
	Exists(ctx context.Context, kind, field string, value any) (bool, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, kind, field string, value any) (bool, error)

func (f LookupFunc) Exists(ctx context.Context, kind, field string, value any) (bool, error) {
	return f(ctx, kind, field, value)
}

type storeRule struct {
	Base
	lookup Lookup
	kind   string
	column string
	// want is the existence outcome that passes the check.
	want bool
	// except skips the lookup when it returns true.
	except func() bool
}

func (r *storeRule) CheckValue(ctx context.Context) {
	if r.except != nil && r.except() {
		r.SetStatus(true)
		return
	}
	found, err := r.lookup.Exists(ctx, r.kind, r.column, r.Value())
	if err != nil {
		r.FailWith(fmt.Errorf("%s %s.%s: %w", r.Name(), r.kind, r.column, err))
		return
	}
	r.SetStatus(found == r.want)
}

// newStoreRule reads "kind[,column]"; column defaults to the field name.
func newStoreRule(in Input, template string, want bool) (*storeRule, error) {
	kind, ok := in.Param(0)
	if !ok {
		return nil, missingParam(in.Name, "kind")
	}
	column, ok := in.Param(1)
	if !ok {
		column = in.Field
	}
	if in.Lookup == nil {
		return nil, fmt.Errorf("%w: rule %q", ErrLookupNotConfigured, in.Name)
	}
	r := &storeRule{Base: NewBase(in, template), lookup: in.Lookup, kind: kind, column: column, want: want}
	r.SetPlaceholder("ENTITY", kind)
	r.SetPlaceholder("MODEL", kind)
	r.SetPlaceholder("COLUMN", column)
	return r, nil
}

func newUnique(in Input) (Rule, error) {
	r, err := newStoreRule(in, "{VALUE} of {ENTITY} with {COLUMN} is not unique", false)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newExist(in Input) (Rule, error) {
	r, err := newStoreRule(in, "{VALUE} of {ENTITY} with {COLUMN} does not exist", true)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// newUniqueAgainst reads "kind,column,against". The value passes unchanged
// when it equals the record's against field, e.g. the current email of the
// account being edited; otherwise it must be unique.
func newUniqueAgainst(in Input) (Rule, error) {
	against, ok := in.Param(2)
	if !ok {
		return nil, missingParam(in.Name, "against")
	}
	r, err := newStoreRule(in, "{VALUE} of {ENTITY} with {COLUMN} is not unique", false)
	if err != nil {
		return nil, err
	}
	r.except = func() bool {
		current := r.Other(against)
		return !IsEmpty(current) && String(current) == String(r.Value())
	}
	r.SetPlaceholder("OTHER", against)
	return r, nil
}
