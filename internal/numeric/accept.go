// Package numeric holds the input acceptor, fixed-decimal normalizer and
// step engine behind the number input widget.
package numeric

import (
	"regexp"
	"strings"
)

// inProgress lists the shapes a partially typed number may take.
// A candidate is acceptable when any of them matches.
var inProgress = []*regexp.Regexp{
	regexp.MustCompile(`^[+-]?\d+\.?$`),       // "12", "-3."
	regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`), // "-3.14"
	regexp.MustCompile(`^\d+\.$`),             // "7."
	regexp.MustCompile(`^[+-]?$`),             // "-" while typing a negative
	regexp.MustCompile(`^\.\d+$`),             // ".5"
}

var signOnly = regexp.MustCompile(`^[+-]?$`)

// Accept reports whether text is a legal in-progress numeric entry.
// The empty string is always accepted so the field can be cleared.
func Accept(text string) bool {
	if text == "" {
		return true
	}
	for _, re := range inProgress {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Simplify turns held edit text into something the normalizer can parse:
// a lone sign becomes empty and a single trailing separator is dropped.
func Simplify(raw string) string {
	if signOnly.MatchString(raw) {
		return ""
	}
	return strings.TrimSuffix(raw, ".")
}
