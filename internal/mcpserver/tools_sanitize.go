package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/milonpl/prototools/parser"
	"github.com/milonpl/prototools/protoerrors"
	"github.com/milonpl/prototools/sanitizer"
)

type sanitizeInput struct {
	Dir string `json:"dir" jsonschema:"Base directory containing entity prototype YAML files"`
	ID  string `json:"id"  jsonschema:"Id of the prototype to sanitize"`
}

type sanitizeOutput struct {
	ID                string              `json:"id"`
	Document          string              `json:"document"`
	RemovedComponents []string            `json:"removed_components,omitempty"`
	StrippedFields    map[string][]string `json:"stripped_fields,omitempty"`
	Warnings          []string            `json:"warnings,omitempty"`
	PrototypeCount    int                 `json:"prototype_count"`
	LoadErrors        int                 `json:"load_errors,omitempty"`
}

func handleSanitize(_ context.Context, _ *mcp.CallToolRequest, input sanitizeInput) (*mcp.CallToolResult, sanitizeOutput, error) {
	if input.Dir == "" {
		return errResult(&protoerrors.ConfigError{Option: "dir", Message: "required"}), sanitizeOutput{}, nil
	}
	if input.ID == "" {
		return errResult(&protoerrors.ConfigError{Option: "id", Message: "required"}), sanitizeOutput{}, nil
	}

	loaded, err := loadStore(input.Dir)
	if err != nil {
		return errResult(err), sanitizeOutput{}, nil
	}

	s := sanitizer.New(loaded.Store)
	result, err := s.Sanitize(input.ID)
	if err != nil {
		return errResult(err), sanitizeOutput{}, nil
	}

	data, err := parser.MarshalDocuments(result.Document)
	if err != nil {
		return errResult(err), sanitizeOutput{}, nil
	}

	stripped := result.StrippedFields
	if len(stripped) == 0 {
		stripped = nil
	}
	return nil, sanitizeOutput{
		ID:                result.ID,
		Document:          string(data),
		RemovedComponents: result.RemovedComponents,
		StrippedFields:    stripped,
		Warnings:          result.Warnings,
		PrototypeCount:    loaded.PrototypeCount,
		LoadErrors:        loaded.ErrorCount,
	}, nil
}
