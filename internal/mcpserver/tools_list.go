package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/milonpl/prototools/protoerrors"
)

type listInput struct {
	Dir    string `json:"dir"              jsonschema:"Base directory containing entity prototype YAML files"`
	Prefix string `json:"prefix,omitempty" jsonschema:"Only list prototype ids with this prefix"`
	Limit  int    `json:"limit,omitempty"  jsonschema:"Maximum number of ids to return (default from PROTOTOOLS_LIST_LIMIT)"`
}

type listedPrototype struct {
	ID         string `json:"id"`
	SourcePath string `json:"source_path"`
}

type listOutput struct {
	Prototypes []listedPrototype `json:"prototypes"`
	Total      int               `json:"total"`
	Truncated  bool              `json:"truncated,omitempty"`
	LoadErrors int               `json:"load_errors,omitempty"`
}

func handleListPrototypes(_ context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	if input.Dir == "" {
		return errResult(&protoerrors.ConfigError{Option: "dir", Message: "required"}), listOutput{}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = cfg.ListLimit
	}

	loaded, err := loadStore(input.Dir)
	if err != nil {
		return errResult(err), listOutput{}, nil
	}

	output := listOutput{LoadErrors: loaded.ErrorCount}
	for _, id := range loaded.Store.IDs() {
		if input.Prefix != "" && !strings.HasPrefix(id, input.Prefix) {
			continue
		}
		output.Total++
		if len(output.Prototypes) >= limit {
			output.Truncated = true
			continue
		}
		proto, _ := loaded.Store.Get(id)
		output.Prototypes = append(output.Prototypes, listedPrototype{
			ID:         id,
			SourcePath: proto.SourcePath,
		})
	}
	return nil, output, nil
}
