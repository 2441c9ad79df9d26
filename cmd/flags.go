/*
Copyright © 2026 The string-fns authors
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Design: Flags are package-level variables bound to the root command.
// Commands read them through accessors rather than cobra internals. The
// out writer is swappable so tests can capture output.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var validOutputFormats = []string{"json"}

var output string

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// Out returns the output writer.
func Out() io.Writer { return out }

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Output returns the output format flag value.
func Output() string { return output }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed (suppressing cobra's duplicate
// printing), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (json)")
}
