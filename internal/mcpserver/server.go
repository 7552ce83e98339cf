// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes prototools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/milonpl/prototools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `prototools MCP server — loads entity prototype YAML hierarchies and removes inherited-redundant configuration.

Configuration: defaults are configurable via PROTOTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- PROTOTOOLS_CACHE_ENABLED (default: true) — cache loaded prototype directories per session
- PROTOTOOLS_CACHE_TTL (default: 5m) — cache TTL for a loaded directory
- PROTOTOOLS_LIST_LIMIT (default: 100) — default result limit for list_prototypes

Caching: loaded directories are cached per session keyed by absolute path. Re-run a tool after the TTL elapses to pick up on-disk edits sooner, or disable the cache entirely.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "prototools", Version: prototools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sanitize",
		Description: "Sanitize one entity prototype: load the prototype directory, walk the target's parent chain, and strip every component or component field an ancestor already supplies identically. Returns the minimal YAML definition plus what was removed. Unresolved parents are reported as warnings; an unknown id or a cyclic parent chain is an error.",
	}, handleSanitize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_prototypes",
		Description: "List entity prototype ids found under a directory, with their source files. Filter with prefix to narrow large trees; results are sorted by id and truncated at limit (configurable via PROTOTOOLS_LIST_LIMIT).",
	}, handleListPrototypes)
}

// errResult wraps an error as a tool-call failure without terminating the
// server session.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
