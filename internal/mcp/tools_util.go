// tools_util.go provides helpers for MCP tool parameter extraction.
//
// Extraction is permissive (return the default on error) rather than
// strict: an LLM omitting an optional parameter, or passing a number
// where a string belongs, should get a usable default instead of a type
// error it may struggle to interpret.

package mcp

import (
	"github.com/emacsattic/string-fns/internal/format"
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def when missing.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt extracts an integer parameter. JSON numbers decode as float64,
// so the assertion goes through float64 first.
func getInt(req mcp.CallToolRequest, name string, def int) int {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

// jsonResult serialises v as pretty-printed JSON wrapped in an MCP text
// result. Marshal failures become MCP error results rather than Go
// errors, keeping all failures on the protocol's error channel.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := format.MarshalJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
