// Copyright (c) 2025-present LaunchPlan Labs. All Rights Reserved.
// See LICENSE.txt for license information.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"

	"github.com/launchplan-ai/launchplan/plan"
)

// GeneratePlanArgs are the arguments for the generate_marketing_plan tool.
type GeneratePlanArgs struct {
	Attributes  map[string]any `json:"attributes,omitempty" jsonschema:"intake form fields keyed by field name"`
	AutoIterate bool           `json:"auto_iterate,omitempty" jsonschema:"rerun the strategy phase once when the evaluation scores below the quality threshold"`
}

// SuggestFieldArgs are the arguments for the suggest_field_value tool. Context
// is a JSON-encoded object of the fields the user has already filled in.
type SuggestFieldArgs struct {
	FieldName string `json:"field_name" jsonschema:"the intake field to suggest a value for"`
	Context   string `json:"context,omitempty" jsonschema:"JSON object of already filled fields"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_marketing_plan",
		Description: "Generate a complete marketing plan document from intake form attributes",
		InputSchema: mustSchema[GeneratePlanArgs](),
	}, s.handleGeneratePlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "suggest_field_value",
		Description: "Suggest a value for a specific form field based on already filled fields",
		InputSchema: mustSchema[SuggestFieldArgs](),
	}, s.handleSuggestField)
}

func (s *Server) handleGeneratePlan(ctx context.Context, _ *mcp.CallToolRequest, args GeneratePlanArgs) (*mcp.CallToolResult, any, error) {
	doc, err := s.generator.GenerateDocument(ctx, plan.Attributes(args.Attributes), args.AutoIterate)
	if err != nil {
		s.log.Error("plan generation failed", "error", err.Error())
		return errorResult(err), nil, nil
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errorResult(errors.Wrap(err, "unable to encode document")), nil, nil
	}

	return textResult(string(raw)), nil, nil
}

func (s *Server) handleSuggestField(ctx context.Context, _ *mcp.CallToolRequest, args SuggestFieldArgs) (*mcp.CallToolResult, any, error) {
	if args.FieldName == "" {
		return errorResult(errors.New("field_name is required")), nil, nil
	}

	attrs := plan.Attributes{}
	if args.Context != "" {
		if err := json.Unmarshal([]byte(args.Context), &attrs); err != nil {
			return errorResult(errors.Wrap(err, "context must be a JSON object")), nil, nil
		}
	}

	suggestion, err := s.assistant.SuggestField(ctx, args.FieldName, attrs)
	if err != nil {
		s.log.Error("field suggestion failed", "field_name", args.FieldName, "error", err.Error())
		return errorResult(err), nil, nil
	}

	return textResult(suggestion), nil, nil
}

// mustSchema builds the JSON schema for a tool argument struct. Argument
// structs are fixed at compile time, so schema generation cannot fail at
// runtime.
func mustSchema[T any]() *jsonschema.Schema {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		panic(fmt.Sprintf("unable to build JSON schema: %v", err))
	}
	return schema
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + err.Error()},
		},
		IsError: true,
	}
}
