// Package credit parses movie-credit records and normalizes participant names.
package credit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize turns a raw credit string into a participant name.
//
// Processing steps:
//   - "Kevin Bacon (actor)"    → cut at the first "(" → "Kevin Bacon"
//   - "[[Sean Penn|Sean]]"     → cut at the first "|" → "[[Sean Penn"
//   - "[[Sean Penn"            → trim brackets and whitespace → "Sean Penn"
//   - "sean PENN"              → title case → "Sean Penn"
//
// Any string maps to a name; input made only of annotations yields "".
// Normalize is idempotent.
func Normalize(raw string) string {
	name := raw
	if idx := strings.IndexByte(name, '('); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.IndexByte(name, '|'); idx >= 0 {
		name = name[:idx]
	}

	// Brackets and whitespace are trimmed together so that " [x]" and "[ x ]"
	// both reduce in a single pass.
	name = strings.TrimFunc(name, isTrimmable)
	if name == "" {
		return ""
	}

	// A Caser keeps state between calls and must not be shared.
	return cases.Title(language.Und).String(name)
}

func isTrimmable(r rune) bool {
	return r == '[' || r == ']' || unicode.IsSpace(r)
}

// EqualFold reports whether two raw names normalize to names that match
// case-insensitively.
func EqualFold(a, b string) bool {
	return strings.EqualFold(Normalize(a), Normalize(b))
}
