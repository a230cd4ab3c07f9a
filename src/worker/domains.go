// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package worker

import (
	"context"

	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetDomainConfig returns the configuration of a domain.
func (w *Worker) GetDomainConfig(ctx context.Context, domain, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.GetDomainConfig(ctx, w.creds, domain, &scope))
}

// GetDomain returns information for a single domain.
func (w *Worker) GetDomain(ctx context.Context, domain, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.GetDomain(ctx, w.creds, domain, &scope))
}

// GetDomains lists the domains of the account or team.
func (w *Worker) GetDomains(ctx context.Context, options string) (*mcp.CallToolResult, error) {
	var opts vercel.GetDomainsOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.GetDomains(ctx, w.creds, &opts))
}
