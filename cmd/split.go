/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"

	"github.com/emacsattic/string-fns/internal/log"
	"github.com/emacsattic/string-fns/textsplit"
	"github.com/spf13/cobra"
)

func newSplitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "split <text> <separator>",
		Short: "Split text on a literal separator",
		Long: `Split text on a literal separator, one field per output line.
An empty separator splits into characters.

  string-fns split a:b:c :
  string-fns split a::b : --omit-empty`,
		Args: cobra.ExactArgs(2),
		RunE: runSplit,
	}
	c.Flags().Bool("omit-empty", false, "Drop empty fields")
	return c
}

func runSplit(c *cobra.Command, args []string) error {
	text, sep := args[0], args[1]
	omitEmpty, _ := c.Flags().GetBool("omit-empty")

	var fields []string
	if omitEmpty {
		fields = textsplit.SplitNonEmpty(text, sep)
	} else {
		fields = textsplit.Split(text, sep)
	}

	log.Event("split:run", "split").
		Input(text).
		Detail("sep", sep).
		Detail("count", len(fields)).
		Write(nil)

	if JSON() {
		return PrintJSON(map[string]any{"input": text, "fields": fields})
	}
	for _, f := range fields {
		fmt.Fprintln(Out(), f)
	}
	return nil
}
