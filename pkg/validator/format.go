package validator

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{[A-Z][A-Z0-9_]*\}`)

// Format substitutes {NAME} tokens in template with values[NAME].
// Tokens without a value are left untouched.
func Format(template string, values map[string]string) string {
	if len(values) == 0 {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		if v, ok := values[token[1:len(token)-1]]; ok {
			return v
		}
		return token
	})
}
