package validator

import (
	"context"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/easyvalidator/pkg/cache"
)

var (
	alphabetPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaDashPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	alphaNumberPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digitsPattern      = regexp.MustCompile(`^[0-9]+$`)
	numericPattern     = regexp.MustCompile(`^[-+]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)
	idsPattern         = regexp.MustCompile(`^[0-9]+(,[0-9]+)*$`)
	cellphonePattern   = regexp.MustCompile(`^1[3-9][0-9]{9}$`)
	usernamePattern    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

// predicateRule fails when its predicate rejects the string form of the value.
type predicateRule struct {
	Base
	ok func(string) bool
}

func (r *predicateRule) CheckValue(context.Context) {
	r.SetStatus(r.ok(String(r.Value())))
}

func predicate(template string, ok func(string) bool) Constructor {
	return func(in Input) (Rule, error) {
		return &predicateRule{Base: NewBase(in, template), ok: ok}, nil
	}
}

func isAlphabet(s string) bool    { return alphabetPattern.MatchString(s) }
func isAlphaDash(s string) bool   { return alphaDashPattern.MatchString(s) }
func isAlphaNumber(s string) bool { return alphaNumberPattern.MatchString(s) }
func isDigits(s string) bool      { return digitsPattern.MatchString(s) }
func isNumeric(s string) bool     { return numericPattern.MatchString(s) }
func isIDs(s string) bool         { return idsPattern.MatchString(s) }
func isCellphone(s string) bool   { return cellphonePattern.MatchString(s) }
func isUsername(s string) bool    { return usernamePattern.MatchString(s) }

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// isUUID rejects the 32-digit, braced and urn forms uuid.Parse also accepts.
func isUUID(s string) bool {
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// patterns holds compiled regex rule parameters across runs.
var patterns = cache.NewLRU[string, *regexp.Regexp](256)

type regexRule struct {
	Base
	pattern *regexp.Regexp
}

// newRegex compiles the raw parameter as a pattern the whole value must match.
func newRegex(in Input) (Rule, error) {
	raw, ok := in.Param(0)
	if !ok {
		return nil, missingParam(in.Name, "pattern")
	}
	pattern, err := patterns.GetOrCreate(raw, func() (*regexp.Regexp, error) {
		return regexp.Compile(`^(?:` + raw + `)$`)
	})
	if err != nil {
		return nil, invalidParam(in.Name, "pattern", raw, err.Error())
	}
	r := &regexRule{Base: NewBase(in, "{VALUE} of {FIELD} does not match the pattern {REGEX}"), pattern: pattern}
	r.SetPlaceholder("REGEX", raw)
	return r, nil
}

func (r *regexRule) CheckValue(context.Context) {
	r.SetStatus(r.pattern.MatchString(String(r.Value())))
}
