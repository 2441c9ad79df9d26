/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"

	"github.com/emacsattic/string-fns/glob"
	"github.com/emacsattic/string-fns/internal/log"
	"github.com/spf13/cobra"
)

func newGlobCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Translate a glob pattern to a regex pattern",
		Long: `Translate a shell-style glob pattern into a regex pattern string.

  string-fns glob 'docs/*'            # print the regex
  string-fns glob 'a?b' -m aXb        # test a name against the pattern

Wildcards never cross a / and never match a leading dot in a path
segment. See 'string-fns guide glob' for the full syntax.`,
		Args: cobra.ExactArgs(1),
		RunE: runGlob,
	}
	c.Flags().StringP("match", "m", "", "Test this name against the pattern instead of printing the regex")
	return c
}

func runGlob(c *cobra.Command, args []string) error {
	pattern := args[0]
	name, _ := c.Flags().GetString("match")

	if name == "" {
		regex := glob.Translate(pattern)

		log.Event("glob:translate", "translate").Input(pattern).Output(regex).Write(nil)

		if JSON() {
			return PrintJSON(map[string]string{"pattern": pattern, "regex": regex})
		}
		fmt.Fprintln(Out(), regex)
		return nil
	}

	matched, err := glob.Match(pattern, name)

	log.Event("glob:match", "match").
		Input(pattern).
		Detail("name", name).
		Detail("matched", matched).
		Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("match against %q: %w", pattern, err))
	}

	if JSON() {
		return PrintJSON(map[string]any{"pattern": pattern, "name": name, "match": matched})
	}
	if matched {
		fmt.Fprintln(Out(), "match")
		return nil
	}
	fmt.Fprintln(Out(), "no match")
	return nil
}
