/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"

	"github.com/emacsattic/string-fns/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()
			if JSON() {
				return PrintJSON(info)
			}
			fmt.Fprintln(Out(), info.String())
			return nil
		},
	}
}
