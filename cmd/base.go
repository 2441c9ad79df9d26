/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"
	"strconv"

	"github.com/emacsattic/string-fns/baseconv"
	"github.com/emacsattic/string-fns/internal/log"
	"github.com/spf13/cobra"
)

func newBaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "base <digits> <from> <to>",
		Short: "Convert a number between digit bases",
		Long: `Re-express an unsigned integer between bases 2 and 36.
Arbitrary precision: the value is not limited to 64 bits.

  string-fns base ff 16 10   # 255
  string-fns base 255 10 2   # 11111111`,
		Args: cobra.ExactArgs(3),
		RunE: runBase,
	}
}

func runBase(_ *cobra.Command, args []string) error {
	digits := args[0]

	from, err := strconv.Atoi(args[1])
	if err != nil {
		return PrintJSONError(fmt.Errorf("source base %q is not a number", args[1]))
	}
	to, err := strconv.Atoi(args[2])
	if err != nil {
		return PrintJSONError(fmt.Errorf("target base %q is not a number", args[2]))
	}

	result, err := baseconv.Convert(digits, from, to)

	log.Event("base:convert", "convert").
		Input(digits).
		Detail("from", from).
		Detail("to", to).
		Write(err)

	if err != nil {
		return PrintJSONError(err)
	}
	if JSON() {
		return PrintJSON(map[string]any{"input": digits, "from": from, "to": to, "output": result})
	}
	fmt.Fprintln(Out(), result)
	return nil
}
