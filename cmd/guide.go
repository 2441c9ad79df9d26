/*
Copyright © 2026 The string-fns authors
*/

// guide.go implements the "string-fns guide" command.
//
// Design: guides are embedded in the binary via the guide package, so
// documentation is always available without external files. Terminal
// output gets glamour rendering for readability; pipe/redirect gets raw
// markdown for machine consumption.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/emacsattic/string-fns/guide"
	"github.com/emacsattic/string-fns/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [page]",
		Short: "Show the string-fns usage guide",
		Long: `Outputs the string-fns guide.

  string-fns guide        # main guide
  string-fns guide glob   # glob pattern syntax`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGuide,
	}
}

func runGuide(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	content, err := guide.Get(name)
	if err != nil {
		available, listErr := guide.List()
		if listErr != nil {
			return listErr
		}
		return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
	}

	if style := guideStyle(); style != "notty" && term.IsTerminal(int(os.Stdout.Fd())) {
		if style == "auto" {
			style = "dark"
		}
		rendered, err := glamour.Render(content, style)
		if err == nil {
			fmt.Fprint(Out(), rendered)
			return nil
		}
	}

	fmt.Fprint(Out(), content)
	return nil
}

// guideStyle resolves the configured glamour style.
func guideStyle() string {
	cfg, err := config.Load()
	if err != nil {
		return "auto"
	}
	return cfg.GuideStyle()
}
