package format

import (
	"strings"
	"testing"

	"github.com/emacsattic/string-fns/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	entries := []log.Entry{
		{Source: "glob:translate", Action: "translate", Input: "docs/*", Success: true, Start: 1767225600},
		{Source: "hex:decode", Action: "decode", Input: "zz", Success: false, Start: 1767225601},
	}

	var b strings.Builder
	require.NoError(t, History(&b, entries))
	out := b.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "SOURCE")
	assert.Contains(t, lines[1], "glob:translate")
	assert.Contains(t, lines[1], "docs/*")
	assert.Contains(t, lines[2], "hex:decode")
}

func TestHistory_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, History(&b, nil))
	assert.Empty(t, b.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "long in...", truncate("long input text", 10))
}
