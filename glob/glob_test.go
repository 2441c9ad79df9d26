package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		// Inputs with no metacharacters translate to themselves
		{"empty", "", ""},
		{"plain word", "abc", "abc"},
		{"plain path", "foo/bar/baz", "foo/bar/baz"},
		{"punctuation", "hello_world-1,2", "hello_world-1,2"},

		// Wildcards at a path boundary exclude a leading dot
		{"lone star", "*", "[^./]*"},
		{"lone question", "?", "[^./]"},
		{"star after slash", "docs/*", "docs/[^./]*"},
		{"question after slash", "a/?", "a/[^./]"},

		// Mid-segment wildcards only exclude the separator
		{"star mid segment", "a*b", "a[^/]*b"},
		{"question mid segment", "a?b", "a[^/]b"},

		// Negated class syntax is rewritten
		{"negated class", "[!abc]", "[^abc]"},
		{"plain class", "[abc]", "[abc]"},
		{"negated class then star", "[!a]*", "[^a][^/]*"},

		// Literal regex metacharacters get escaped
		{"literal dot", "a.b", `a\.b`},
		{"metachar run", "a+b^c$d", `a\+b\^c\$d`},
		{"suffix pattern", "src/*.go", `src/[^./]*\.go`},

		// Glob escapes of regex metacharacters pass through
		{"escaped star", `\*`, `\*`},
		{"escaped backslash", `\\`, `\\`},
		{"escaped dot", `\.`, `\.`},

		// Glob escapes of ordinary characters are unescaped
		{"escaped letter", `\a`, "a"},
		{"escaped bracket", `\[x]`, "[x]"},
		{"escaped slash", `\/x`, "/x"},

		// Safe fallbacks for malformed patterns
		{"trailing backslash", `a\`, `a\\`},
		{"unterminated class", "[ab", "[ab"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Translate(tc.pattern))
		})
	}
}

// An escaped slash still counts as a path boundary for the following
// wildcard: the raw character consumed was '/'.
func TestTranslate_EscapedSlashBoundary(t *testing.T) {
	assert.Equal(t, "/[^./]", Translate(`\/?`))
}

func TestSegState(t *testing.T) {
	assert.Equal(t, atBoundary, atBoundary.next('/'))
	assert.Equal(t, atBoundary, midSegment.next('/'))
	assert.Equal(t, midSegment, atBoundary.next('a'))
	assert.Equal(t, midSegment, atBoundary.next('.'))
	assert.Equal(t, midSegment, midSegment.next('\\'))

	assert.Equal(t, "[^./]", atBoundary.class())
	assert.Equal(t, "[^/]", midSegment.class())
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		// Star: any run of non-separator characters, no leading dot
		{"*", "foo", true},
		{"*", "", true},
		{"*", ".hidden", false},
		{"*", ".", false},
		{"*", "..", false},
		{"*", "a/b", false},

		// Question: exactly one non-separator character
		{"a?b", "aXb", true},
		{"a?b", "a/b", false},
		{"a?b", "ab", false},
		{"?", "a", true},
		{"?", ".", false},
		{"?", "/", false},

		// Escaped dot matches only the literal dot
		{"a.b", "a.b", true},
		{"a.b", "axb", false},

		// Escaped star matches the literal character
		{`\*`, "*", true},
		{`\*`, "x", false},

		// Negated class
		{"[!abc]", "d", true},
		{"[!abc]", "a", false},
		{"[abc]", "b", true},

		// Path-aware patterns
		{"docs/*", "docs/readme", true},
		{"docs/*", "docs/sub/x", false},
		{"docs/*", "other/readme", false},
		{"docs/*", "docs/.hidden", false},
		{"src/*.go", "src/main.go", true},
		{"src/*.go", "src/main.py", false},
		{"v?", "v1", true},
		{"v?", "v10", false},

		// Empty pattern matches only the empty string
		{"", "", true},
		{"", "x", false},
	}

	for _, tc := range tests {
		t.Run(tc.pattern+"_"+tc.name, func(t *testing.T) {
			got, err := Match(tc.pattern, tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "Match(%q, %q)", tc.pattern, tc.name)
		})
	}
}

func TestRegexp_MalformedPattern(t *testing.T) {
	// An unterminated class copies through and fails to compile; this is
	// how a caller learns the glob was malformed.
	_, err := Regexp("[ab")
	require.Error(t, err)

	// Translate itself stays total.
	assert.Equal(t, "[ab", Translate("[ab"))
}
