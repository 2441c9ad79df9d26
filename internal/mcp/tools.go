// tools.go registers the string-fns conversions as MCP tools.
//
// Every tool is a pure conversion with no server state, so handlers are
// free functions rather than methods. The cram response is deliberately
// not exposed: it would route shared secrets through an LLM transcript.

package mcp

import (
	"context"
	"fmt"

	"github.com/emacsattic/string-fns/baseconv"
	"github.com/emacsattic/string-fns/glob"
	"github.com/emacsattic/string-fns/guide"
	"github.com/emacsattic/string-fns/hexutil"
	"github.com/emacsattic/string-fns/internal/log"
	"github.com/emacsattic/string-fns/pathlist"
	"github.com/emacsattic/string-fns/textsplit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("glob_translate",
			mcp.WithDescription("Translate a shell-style glob pattern into a regex pattern string. Wildcards never cross '/' and never match a leading dot in a path segment."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("The glob pattern to translate")),
		),
		globTranslate,
	)

	s.AddTool(
		mcp.NewTool("glob_match",
			mcp.WithDescription("Test whether a name matches a glob pattern"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("The glob pattern")),
			mcp.WithString("name", mcp.Required(), mcp.Description("The name to test against the pattern")),
		),
		globMatch,
	)

	s.AddTool(
		mcp.NewTool("hex_encode",
			mcp.WithDescription("Encode a string as lowercase hex digits"),
			mcp.WithString("text", mcp.Required(), mcp.Description("The text to encode")),
		),
		hexEncode,
	)

	s.AddTool(
		mcp.NewTool("hex_decode",
			mcp.WithDescription("Decode hex digits back to a string"),
			mcp.WithString("digits", mcp.Required(), mcp.Description("The hex digits to decode")),
		),
		hexDecode,
	)

	s.AddTool(
		mcp.NewTool("base_convert",
			mcp.WithDescription("Re-express an unsigned integer between digit bases 2-36, arbitrary precision"),
			mcp.WithString("digits", mcp.Required(), mcp.Description("The number as a digit string")),
			mcp.WithNumber("from", mcp.Required(), mcp.Description("Source base (2-36)")),
			mcp.WithNumber("to", mcp.Required(), mcp.Description("Target base (2-36)")),
		),
		baseConvert,
	)

	s.AddTool(
		mcp.NewTool("split",
			mcp.WithDescription("Split text on a literal separator; empty separator splits into characters"),
			mcp.WithString("text", mcp.Required(), mcp.Description("The text to split")),
			mcp.WithString("separator", mcp.Description("Literal separator (default empty)")),
			mcp.WithBoolean("omit_empty", mcp.Description("Drop empty fields")),
		),
		splitText,
	)

	s.AddTool(
		mcp.NewTool("path_normalize",
			mcp.WithDescription("Normalize an OS path list: clean entries, drop empties, dedupe keeping first occurrence"),
			mcp.WithString("list", mcp.Required(), mcp.Description("The path list, using the OS list separator")),
		),
		pathNormalize,
	)

	s.AddTool(
		mcp.NewTool("guide",
			mcp.WithDescription("Get string-fns documentation. Call with topic 'glob' for the pattern syntax."),
			mcp.WithString("topic", mcp.Description("Guide page name (default: main guide)")),
		),
		getGuide,
	)
}

func globTranslate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern := getString(req, "pattern", "")
	regex := glob.Translate(pattern)

	log.Event("mcp:glob_translate", "translate").Input(pattern).Output(regex).Write(nil)

	return jsonResult(map[string]string{"pattern": pattern, "regex": regex})
}

func globMatch(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern := getString(req, "pattern", "")
	name := getString(req, "name", "")

	matched, err := glob.Match(pattern, name)

	log.Event("mcp:glob_match", "match").
		Input(pattern).
		Detail("name", name).
		Detail("matched", matched).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"pattern": pattern, "name": name, "match": matched})
}

func hexEncode(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := getString(req, "text", "")
	encoded := hexutil.Encode(text)

	log.Event("mcp:hex_encode", "encode").Input(text).Write(nil)

	return jsonResult(map[string]string{"input": text, "output": encoded})
}

func hexDecode(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digits := getString(req, "digits", "")

	decoded, err := hexutil.Decode(digits)

	log.Event("mcp:hex_decode", "decode").Input(digits).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{"input": digits, "output": decoded})
}

func baseConvert(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digits := getString(req, "digits", "")
	from := getInt(req, "from", 10)
	to := getInt(req, "to", 10)

	result, err := baseconv.Convert(digits, from, to)

	log.Event("mcp:base_convert", "convert").
		Input(digits).
		Detail("from", from).
		Detail("to", to).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{"input": digits, "from": from, "to": to, "output": result})
}

func splitText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := getString(req, "text", "")
	sep := getString(req, "separator", "")

	var fields []string
	if getBool(req, "omit_empty", false) {
		fields = textsplit.SplitNonEmpty(text, sep)
	} else {
		fields = textsplit.Split(text, sep)
	}

	log.Event("mcp:split", "split").Input(text).Detail("count", len(fields)).Write(nil)

	return jsonResult(map[string]any{"input": text, "fields": fields})
}

func pathNormalize(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list := getString(req, "list", "")
	normalized := pathlist.Normalize(list)

	log.Event("mcp:path_normalize", "normalize").
		Detail("entries", len(pathlist.Entries(normalized))).
		Write(nil)

	return jsonResult(map[string]any{"list": normalized, "entries": pathlist.Entries(normalized)})
}

func getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
