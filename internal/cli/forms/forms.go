// Package forms evaluates declarative per-field rules at submit time and
// reports field-level error messages. A submission only reaches the API
// facade once every field passes; whatever the server rejects afterwards is
// a top-level error, not a field error.
package forms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// EmailPattern is the simple nonwhitespace@nonwhitespace shape used for
// email fields.
var EmailPattern = regexp.MustCompile(`^\S+@\S+$`)

// URLPattern accepts absolute http(s) URLs.
var URLPattern = regexp.MustCompile(`^https?://\S+$`)

// Rule checks one value and returns an error message, or "" when the value
// passes.
type Rule func(value string) string

// Required fails on values that are empty after trimming.
func Required(msg string) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}

// Pattern fails on non-empty values not matching re.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return func(v string) string {
		if v != "" && !re.MatchString(v) {
			return msg
		}
		return ""
	}
}

// MinLength fails on values shorter than n characters.
func MinLength(n int, msg string) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) < n {
			return msg
		}
		return ""
	}
}

// MaxLength fails on values longer than n characters.
func MaxLength(n int, msg string) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) > n {
			return msg
		}
		return ""
	}
}

// Field is one named input with its rule set. Rules run in order; the first
// failure becomes the field's error.
type Field struct {
	Name  string
	Rules []Rule
}

// Form is an ordered set of fields.
type Form struct {
	Fields []Field
}

// Errors maps field name to its error message.
type Errors map[string]string

// Clear removes only the given field's error.
func (e Errors) Clear(field string) { delete(e, field) }

// Ok reports whether no field has an error.
func (e Errors) Ok() bool { return len(e) == 0 }

// Error renders the collected field errors, one per line.
func (e Errors) Error() string {
	var b strings.Builder
	for _, f := range sortedKeys(e) {
		fmt.Fprintf(&b, "%s: %s\n", f, e[f])
	}
	return strings.TrimRight(b.String(), "\n")
}

// Validate runs every field's rules against values and collects the first
// failure per field.
func (f Form) Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, field := range f.Fields {
		v := values[field.Name]
		for _, rule := range field.Rules {
			if msg := rule(v); msg != "" {
				errs[field.Name] = msg
				break
			}
		}
	}
	return errs
}

func sortedKeys(e Errors) []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
