/*
Copyright © 2026 The string-fns authors
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: invocation history is opened in Execute so every command gets
// best-effort logging without individual setup. Config is loaded once in
// PersistentPreRunE to supply defaults (like the output format) before any
// command runs.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/emacsattic/string-fns/internal/config"
	"github.com/emacsattic/string-fns/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "string-fns",
	Short: "Shell-glob to regex translation and friends",
	Long:  `String conversion utilities: glob-to-regex translation, hex codec, splitting, number-base conversion, CRAM-MD5 responses, and path-list normalization.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Config supplies the default output format when the flag is unset
		if output == "" {
			if c, err := config.Load(); err == nil && c.Output == "json" {
				output = c.Output
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		newGlobCmd(),
		newHexCmd(),
		newSplitCmd(),
		newBaseCmd(),
		newCramCmd(),
		newPathsCmd(),
		newConfigCmd(),
		newHistoryCmd(),
		newGuideCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
}

// Execute runs the root command and handles process lifecycle.
// Opens invocation history, executes the command, and closes the history
// database before exit. Exit code 1 indicates error.
func Execute() {
	if c, err := config.Load(); err != nil || c.HistoryEnabled() {
		// History is on by default, including when config is unreadable
		if err := log.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		} else if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
