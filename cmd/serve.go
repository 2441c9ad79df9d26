/*
Copyright © 2026 The string-fns authors
*/

// serve.go implements the "string-fns serve" command for MCP operation.
//
// Unlike other commands that run and exit, serve blocks indefinitely
// handling MCP requests over stdio.

package cmd

import (
	"github.com/emacsattic/string-fns/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio, exposing the
string-fns conversions as tools for LLM clients.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}
