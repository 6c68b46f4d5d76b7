package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/easyvalidator/pkg/validator"
)

func TestDate(t *testing.T) {
	t.Run("uses default format", func(t *testing.T) {
		passes(t, "day", "date", "2020-01-15")
		fails(t, "day", "date", "2020-02-30")
		v := fails(t, "day", "date", "15/01/2020")
		assert.Equal(t, []string{"15/01/2020 of day is not a valid date"}, v.Get("day"))
	})

	t.Run("uses format parameter", func(t *testing.T) {
		passes(t, "day", "date:%d/%m/%Y", "15/01/2020")
		passes(t, "year", "date:%Y", "2020")
		fails(t, "day", "date:%d/%m/%Y", "2020-01-15")
	})

	t.Run("uses configured format", func(t *testing.T) {
		passes(t, "day", "date", "15/01/2020", validator.WithDateFormat("%d/%m/%Y"))
	})

	t.Run("accepts empty value", func(t *testing.T) {
		passes(t, "day", "date", "")
	})
}

func TestDateComparisons(t *testing.T) {
	t.Run("before is strict", func(t *testing.T) {
		passes(t, "birthday", "date_before:1990,%Y,%Y", "1989")
		fails(t, "birthday", "date_before:1990,%Y,%Y", "1990")
		v := fails(t, "birthday", "date_before:1990,%Y,%Y", "1991")
		assert.Equal(t, []string{"1991 of birthday is not before 1990"}, v.Get("birthday"))
	})

	t.Run("after is strict", func(t *testing.T) {
		passes(t, "birthday", "date_after:1990-12-12", "1991-01-01")
		fails(t, "birthday", "date_after:1990-12-12", "1990-12-12")
	})

	t.Run("equal variants include bound", func(t *testing.T) {
		passes(t, "birthday", "date_before_equal:1990-12-12", "1990-12-12")
		fails(t, "birthday", "date_before_equal:1990-12-12", "1990-12-13")
		passes(t, "birthday", "date_after_equal:1990-12-12", "1990-12-12")
		fails(t, "birthday", "date_after_equal:1990-12-12", "1990-12-11")
	})

	t.Run("parameter format may differ from field format", func(t *testing.T) {
		passes(t, "birthday", "date_before:1990,%Y-%m-%d,%Y", "1989-12-31")
		fails(t, "birthday", "date_before:1990,%Y-%m-%d,%Y", "1990-01-01")
	})

	t.Run("fails unparsable value", func(t *testing.T) {
		fails(t, "birthday", "date_before:1990-12-12", "yesterday")
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		configError(t, "date_before", validator.ErrMissingParameter)
		configError(t, "date_before:yesterday", validator.ErrInvalidParameter)
		configError(t, "date_after:1990,%Y-%m-%d", validator.ErrInvalidParameter)
	})
}

func TestDateRange(t *testing.T) {
	chain := "date_range:2020-01-01,2020-12-31"

	t.Run("is inclusive", func(t *testing.T) {
		passes(t, "day", chain, "2020-01-01")
		passes(t, "day", chain, "2020-06-01")
		passes(t, "day", chain, "2020-12-31")
	})

	t.Run("fails outside range", func(t *testing.T) {
		v := fails(t, "day", chain, "2021-01-01")
		assert.Equal(t, []string{"2021-01-01 of day is not in range of 2020-01-01 to 2020-12-31"}, v.Get("day"))
		fails(t, "day", chain, "2019-12-31")
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		configError(t, "date_range:2020-01-01", validator.ErrMissingParameter)
		configError(t, "date_range:2020-12-31,2020-01-01", validator.ErrInvalidParameter)
	})
}

func TestDatetime(t *testing.T) {
	t.Run("validates format", func(t *testing.T) {
		passes(t, "at", "datetime", "2020-01-01 12:00:00")
		v := fails(t, "at", "datetime", "2020-01-01")
		assert.Equal(t, []string{"2020-01-01 of at is not a valid datetime"}, v.Get("at"))
		passes(t, "at", "datetime", "01/02/2020 10:30", validator.WithDatetimeFormat("%d/%m/%Y %H:%M"))
	})

	t.Run("compares with bound", func(t *testing.T) {
		passes(t, "at", "datetime_before:2020-01-01 00:00:00", "2019-12-31 23:59:59")
		v := fails(t, "at", "datetime_before:2020-01-01 00:00:00", "2020-01-01 00:00:01")
		assert.Equal(t, []string{"2020-01-01 00:00:01 of at is not before 2020-01-01 00:00:00"}, v.Get("at"))
		passes(t, "at", "datetime_after:2020-01-01 00:00:00", "2020-01-01 00:00:01")
		passes(t, "at", "datetime_before_equal:2020-01-01 00:00:00", "2020-01-01 00:00:00")
		passes(t, "at", "datetime_after_equal:2020-01-01 00:00:00", "2020-01-01 00:00:00")
	})

	t.Run("checks range", func(t *testing.T) {
		chain := "datetime_range:2020-01-01 00:00:00,2020-12-31 23:59:59"
		passes(t, "at", chain, "2020-06-15 08:00:00")
		fails(t, "at", chain, "2021-01-01 00:00:00")
	})
}
