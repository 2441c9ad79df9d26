// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation concerns (column alignment, timestamps, JSON
// pretty-printing) so command implementations focus on their logic.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/emacsattic/string-fns/internal/log"
)

// History prints history entries in a column-aligned table, newest first.
func History(w io.Writer, entries []log.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	maxSource := len("SOURCE")
	for _, e := range entries {
		if len(e.Source) > maxSource {
			maxSource = len(e.Source)
		}
	}

	fmt.Fprintf(w, "%-16s  %-*s  %-2s  %s\n", "WHEN", maxSource, "SOURCE", "OK", "INPUT")
	for _, e := range entries {
		ok := "y"
		if !e.Success {
			ok = "n"
		}
		when := time.Unix(e.Start, 0).Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%-16s  %-*s  %-2s  %s\n", when, maxSource, e.Source, ok, truncate(e.Input, 60))
	}
	return nil
}

// truncate shortens s for single-line display.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// MarshalJSON pretty-prints v with two-space indentation.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
