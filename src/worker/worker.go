// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package worker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/vercel-mcp/src/internal/helper/jsonrpc"
	mcpserver "github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server"
	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrMalformedInput marks options or body strings that are not valid for the method.
var ErrMalformedInput = errors.New("malformed input")

// Worker binds the upstream capability to a fixed credential context.
// It holds no per-call state and is safe for concurrent use.
type Worker struct {
	api   mcpserver.VercelAPI
	creds vercel.Credentials
}

// New returns a worker calling api with creds on every method.
func New(api mcpserver.VercelAPI, creds vercel.Credentials) *Worker {
	return &Worker{api: api, creds: creds}
}

// decodeOptions strictly decodes an options string into dest.
// "" and "{}" both leave dest untouched.
func decodeOptions(options string, dest any) error {
	if err := jsonrpc.DecodeStrict(options, dest); err != nil {
		return fmt.Errorf("%w: options: %v", ErrMalformedInput, err)
	}
	return nil
}

// decodeBody validates a JSON request body and returns it for verbatim forwarding.
func decodeBody(name, body string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: %s is required", ErrMalformedInput, name)
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrMalformedInput, name)
	}
	return json.RawMessage(trimmed), nil
}

// envelope wraps an upstream result, passing upstream errors through unchanged.
func envelope(result any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return nil, err
	}
	return mcpserver.NewEnvelope(result)
}
