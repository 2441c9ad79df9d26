/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"

	"github.com/emacsattic/string-fns/internal/format"
	"github.com/emacsattic/string-fns/internal/log"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Show recent invocations",
		Long: `List recent string-fns invocations recorded in the history database
(~/.string-fns/history.db), newest first.

Disable recording with: string-fns config history.enabled false`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}
	c.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 = all)")
	return c
}

func runHistory(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt("limit")
	if limit < 0 {
		return PrintJSONError(fmt.Errorf("limit (-n) must be >= 0, got %d", limit))
	}

	// Reading works even when recording is disabled
	if err := log.Open(); err != nil {
		return PrintJSONError(fmt.Errorf("open history: %w", err))
	}

	entries, err := log.Recent(limit)
	if err != nil {
		return PrintJSONError(fmt.Errorf("read history: %w", err))
	}

	if JSON() {
		return PrintJSON(map[string]any{"entries": entries})
	}
	if len(entries) == 0 {
		fmt.Fprintln(Out(), "no history")
		return nil
	}
	return format.History(Out(), entries)
}
