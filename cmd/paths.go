/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/emacsattic/string-fns/internal/log"
	"github.com/emacsattic/string-fns/pathlist"
	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "paths [list]",
		Short: "Normalize an OS path list",
		Long: `Clean a PATH-style list: entries cleaned, empties dropped, duplicates
removed keeping the first occurrence. Defaults to $PATH.

  string-fns paths
  string-fns paths '/bin:/usr/bin:/bin'
  string-fns paths --entries            # one directory per line`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPaths,
	}
	c.Flags().Bool("entries", false, "Print one directory per line instead of a joined list")
	return c
}

func runPaths(c *cobra.Command, args []string) error {
	list := os.Getenv("PATH")
	if len(args) > 0 {
		list = args[0]
	}
	perLine, _ := c.Flags().GetBool("entries")

	normalized := pathlist.Normalize(list)

	log.Event("paths:normalize", "normalize").
		Detail("entries", len(pathlist.Entries(normalized))).
		Write(nil)

	if JSON() {
		return PrintJSON(map[string]any{"list": normalized, "entries": pathlist.Entries(normalized)})
	}
	if perLine {
		for _, dir := range pathlist.Entries(normalized) {
			fmt.Fprintln(Out(), dir)
		}
		return nil
	}
	fmt.Fprintln(Out(), normalized)
	return nil
}
