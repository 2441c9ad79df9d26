/*
Copyright © 2026 The string-fns authors
*/

// cram.go implements the "string-fns cram" command.
//
// The shared secret is never taken as an argument: arguments leak via
// shell history and process listings. It comes from STRINGFNS_SECRET or,
// when stdin is a terminal, an echo-free prompt. The secret and the
// response are also kept out of invocation history.

package cmd

import (
	"fmt"
	"os"

	"github.com/emacsattic/string-fns/cram"
	"github.com/emacsattic/string-fns/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newCramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cram <username> <challenge>",
		Short: "Build a CRAM-MD5 challenge response",
		Long: `Build the client response for a base64-encoded CRAM-MD5 challenge
(RFC 2195). The shared secret is read from the STRINGFNS_SECRET
environment variable, or prompted for when running interactively.

  STRINGFNS_SECRET=tanstaaftanstaaf string-fns cram tim PDE4OTYuLi4+`,
		Args: cobra.ExactArgs(2),
		RunE: runCram,
	}
}

func runCram(_ *cobra.Command, args []string) error {
	username, challenge := args[0], args[1]

	secret, err := readSecret()
	if err != nil {
		return PrintJSONError(err)
	}

	response, err := cram.Response(username, secret, challenge)

	log.Event("cram:response", "respond").Input(username).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}
	if JSON() {
		return PrintJSON(map[string]string{"username": username, "response": response})
	}
	fmt.Fprintln(Out(), response)
	return nil
}

func readSecret() (string, error) {
	if s, ok := os.LookupEnv("STRINGFNS_SECRET"); ok {
		return s, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no secret: set STRINGFNS_SECRET or run interactively")
	}

	fmt.Fprint(os.Stderr, "Secret: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return string(b), nil
}
