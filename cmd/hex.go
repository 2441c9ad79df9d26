/*
Copyright © 2026 The string-fns authors
*/

package cmd

import (
	"fmt"

	"github.com/emacsattic/string-fns/hexutil"
	"github.com/emacsattic/string-fns/internal/log"
	"github.com/spf13/cobra"
)

func newHexCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "hex <text>",
		Short: "Encode text as hex digits (or decode with -d)",
		Long: `Convert between a string and its hex-digit encoding.

  string-fns hex hello          # 68656c6c6f
  string-fns hex -d 68656c6c6f  # hello`,
		Args: cobra.ExactArgs(1),
		RunE: runHex,
	}
	c.Flags().BoolP("decode", "d", false, "Decode hex digits instead of encoding")
	return c
}

func runHex(c *cobra.Command, args []string) error {
	in := args[0]
	decode, _ := c.Flags().GetBool("decode")

	var (
		result string
		action = "encode"
		err    error
	)
	if decode {
		action = "decode"
		result, err = hexutil.Decode(in)
	} else {
		result = hexutil.Encode(in)
	}

	log.Event("hex:"+action, action).Input(in).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}
	if JSON() {
		return PrintJSON(map[string]string{"input": in, "output": result})
	}
	fmt.Fprintln(Out(), result)
	return nil
}
