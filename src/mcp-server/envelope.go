// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xeipuuv/gojsonschema"
)

// NewEnvelope wraps an arbitrary result into a single text content item.
//
// Parameters:
//   - v: Upstream payload or any serializable value
//
// Returns:
//   - A CallToolResult with exactly one [mcp.TextContent]
//   - An error if v cannot be serialized
//
// A string is used verbatim. A [json.RawMessage] is re-indented, and any other
// value is marshalled with a 2-space indent, so nil becomes "null".
func NewEnvelope(v any) (*mcp.CallToolResult, error) {
	switch data := v.(type) {
	case string:
		return mcp.NewToolResultText(data), nil
	case json.RawMessage:
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, fmt.Errorf("failed to indent result: %w", err)
		}
		return mcp.NewToolResultText(buf.String()), nil
	}

	text, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return mcp.NewToolResultText(string(text)), nil
}

// NewErrorEnvelope builds the failure form "Error <action>: <message>".
//
// The shape is the same as a success envelope. IsError stays false, so
// callers tell outcomes apart by the text alone.
func NewErrorEnvelope(action string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("Error %s: %s", action, errorMessage(err)))
}

// errorMessage prefers the upstream message over the wrapped chain.
func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}

	var apiErr *vercel.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}

	return err.Error()
}

// withEnvelope binds a tool definition to its dependencies and returns the
// handler registered with the server. It is the only failure boundary:
// schema violations, adapter errors and serialization errors all come back
// as an error envelope and never as a protocol error.
//
// Parameters:
//   - def: The tool definition holding schema, action phrase and adapter
//   - api: Upstream capability
//   - creds: Credential context passed into the adapter
//   - log: Logger receiving one error entry per failed call
//
// Returns:
//   - A [server.ToolHandlerFunc] ready for registration
func withEnvelope(def ToolDefinition, api VercelAPI, creds vercel.Credentials, log logger.Logger) server.ToolHandlerFunc {
	schema, schemaErr := gojsonschema.NewSchema(gojsonschema.NewGoLoader(inputSchema(def.Tool)))

	fail := func(err error) (*mcp.CallToolResult, error) {
		log.Errorf("%s: %v", def.Tool.Name, err)
		return NewErrorEnvelope(def.Action, err), nil
	}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if schemaErr != nil {
			return fail(fmt.Errorf("invalid tool schema: %w", schemaErr))
		}

		args := request.GetArguments()
		if args == nil {
			args = map[string]any{}
		}

		if err := validateArguments(schema, args); err != nil {
			return fail(err)
		}

		result, err := def.Adapter(ctx, api, creds, args)
		if err != nil {
			return fail(err)
		}

		envelope, err := NewEnvelope(result)
		if err != nil {
			return fail(err)
		}

		return envelope, nil
	}
}

// inputSchema converts the declared tool input schema into a plain JSON Schema document.
func inputSchema(tool mcp.Tool) map[string]any {
	properties := tool.InputSchema.Properties
	if properties == nil {
		properties = map[string]any{}
	}

	doc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(tool.InputSchema.Required) > 0 {
		doc["required"] = tool.InputSchema.Required
	}

	return doc
}

// validateArguments checks args against the compiled schema and joins every violation into one error.
func validateArguments(schema *gojsonschema.Schema, args map[string]any) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return fmt.Errorf("invalid arguments: %s", strings.Join(violations, "; "))
}
