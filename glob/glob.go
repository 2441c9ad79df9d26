// Package glob translates shell-style glob patterns into regular
// expression pattern strings.
//
// Wildcards follow conventional shell globbing rules for paths: `*` and `?`
// never cross a `/` separator, and never match a leading `.` at the start
// of a path segment. `[!...]` is rewritten to the regex negated-class
// syntax `[^...]`. Backslash escapes a glob metacharacter.
//
// Translate is total: every input produces an output string without error.
// Malformed patterns (a trailing lone backslash, an unterminated `[` class)
// get a safe, documented fallback; the result may then fail to compile as
// a regex, which is the caller's signal that the glob was malformed.
package glob

import (
	"fmt"
	"regexp"
	"strings"
)

// segState tracks where the translation cursor sits relative to path
// separators. Wildcard expansion depends only on this state.
type segState uint8

const (
	// atBoundary: start of the pattern, or just after a '/'. Wildcards
	// here additionally refuse to match a leading '.'.
	atBoundary segState = iota
	// midSegment: anywhere else.
	midSegment
)

// next returns the state after consuming the raw input character c.
func (s segState) next(c byte) segState {
	if c == '/' {
		return atBoundary
	}
	return midSegment
}

// class returns the wildcard exclusion class for the current state.
func (s segState) class() string {
	if s == atBoundary {
		return "[^./]"
	}
	return "[^/]"
}

// needsEscape reports whether c appearing literally in a glob must be
// backslash-escaped so the regex engine treats it literally.
func needsEscape(c byte) bool {
	switch c {
	case '^', '$', '+', '.':
		return true
	}
	return false
}

// keepsEscape reports whether a glob-level `\c` is already a correctly
// escaped regex metacharacter and passes through untouched.
func keepsEscape(c byte) bool {
	return c == '\\' || c == '*' || needsEscape(c)
}

// Translate converts a glob pattern into an equivalent regex pattern
// string. The result is unanchored; use Regexp or Match for whole-string
// matching.
//
// The translation is a single left-to-right pass. The input is never
// mutated; multibyte UTF-8 sequences copy through byte-for-byte since
// every metacharacter is ASCII.
func Translate(pattern string) string {
	var out strings.Builder
	out.Grow(len(pattern) + len(pattern)/2)

	st := atBoundary
	for i := 0; i < len(pattern); {
		c := pattern[i]
		last := c // raw character that decides the next state
		n := 1    // raw input characters consumed

		switch {
		case c == '\\':
			if i+1 < len(pattern) {
				last = pattern[i+1]
				n = 2
				if keepsEscape(last) {
					// Already a valid regex escape: keep both.
					out.WriteByte('\\')
				}
				// Otherwise the escaped character needs no regex
				// escaping: drop the backslash, keep the character.
				out.WriteByte(last)
			} else {
				// Trailing lone escape: match a literal backslash.
				out.WriteString(`\\`)
			}
		case c == '?':
			out.WriteString(st.class())
		case c == '*':
			out.WriteString(st.class())
			out.WriteByte('*')
		case c == '[':
			if i+1 < len(pattern) && pattern[i+1] == '!' {
				last = '!'
				n = 2
				out.WriteString("[^")
			} else {
				// Class body (and an unterminated class) flows through
				// the normal rules on later iterations.
				out.WriteByte('[')
			}
		case needsEscape(c):
			out.WriteByte('\\')
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}

		st = st.next(last)
		i += n
	}
	return out.String()
}

// Regexp translates pattern and compiles it anchored to the whole input.
// Returns an error if the translated pattern does not compile, which only
// happens for malformed globs such as an unterminated `[` class.
func Regexp(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + Translate(pattern) + ")$")
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	return re, nil
}

// Match reports whether name matches the glob pattern.
// Returns an error if the pattern is malformed.
func Match(pattern, name string) (bool, error) {
	re, err := Regexp(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(name), nil
}
