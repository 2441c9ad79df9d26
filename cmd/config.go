/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"
	"strings"

	"github.com/emacsattic/string-fns/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration",
		Long: fmt.Sprintf(`Read or change string-fns configuration.

  string-fns config                        # show all keys
  string-fns config output                 # show one key
  string-fns config output json            # set globally
  string-fns config output json --local    # set for this directory

Keys: %s

Global config lives in ~/.string-fns/config.yaml; --local writes
./.string-fns.yaml, which takes precedence when present.`, strings.Join(config.Keys(), ", ")),
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool("local", false, "Operate on the local (per-directory) config")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	local, _ := c.Flags().GetBool("local")

	scope := config.ScopeGlobal
	if local {
		scope = config.ScopeLocal
	}

	// Reads use the merged view unless --local was given explicitly
	var (
		cfg *config.Config
		err error
	)
	if local || len(args) == 2 {
		cfg, err = config.LoadScope(scope)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(err)
	}

	switch len(args) {
	case 0:
		values := map[string]string{}
		for _, key := range config.Keys() {
			v, err := cfg.Get(key)
			if err != nil {
				return PrintJSONError(err)
			}
			values[key] = v
		}
		if JSON() {
			return PrintJSON(values)
		}
		for _, key := range config.Keys() {
			fmt.Fprintf(Out(), "%s=%s\n", key, values[key])
		}
		return nil

	case 1:
		v, err := cfg.Get(args[0])
		if err != nil {
			return PrintJSONError(err)
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)
		return nil

	default:
		if err := cfg.Set(args[0], args[1]); err != nil {
			return PrintJSONError(err)
		}
		if err := cfg.SaveScope(scope); err != nil {
			return PrintJSONError(err)
		}
		return PrintJSON(map[string]string{args[0]: args[1]})
	}
}
