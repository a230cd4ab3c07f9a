// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/vercel-mcp/src/internal/helper/jsonrpc"
	"github.com/samber/lo"
)

// requireString extracts a required, non-empty string argument.
func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("required argument %q not found or empty", key)
	}
	return v, nil
}

// requireBody extracts a required request body argument.
func requireBody(args map[string]any, key string) (any, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("required argument %q not found", key)
	}
	return v, nil
}

// bindOptions decodes the optional arguments onto a typed option record.
// Keys listed in skip are positional identifiers or bodies and are not bound.
func bindOptions(args map[string]any, dest any, skip ...string) error {
	if err := jsonrpc.UnmarshalFromMap(lo.OmitByKeys(args, skip), dest); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// splitList turns a comma-joined string into its trimmed, non-empty parts.
func splitList(s string) []string {
	parts := lo.FilterMap(strings.Split(s, ","), func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
	if len(parts) == 0 {
		return nil
	}
	return parts
}
