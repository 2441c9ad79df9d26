// Package mcp implements the Model Context Protocol server, exposing the
// string-fns conversions to LLMs. This lets AI assistants translate glob
// patterns, convert encodings, and normalize path lists through a
// standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"string-fns",
		Version,
		server.WithToolCapabilities(true),
	)

	registerTools(s)

	slog.Info("string-fns MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}
