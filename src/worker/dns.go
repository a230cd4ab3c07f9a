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

// GetRecords lists the DNS records of a domain.
func (w *Worker) GetRecords(ctx context.Context, domain, options string) (*mcp.CallToolResult, error) {
	var opts vercel.GetRecordsOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.GetRecords(ctx, w.creds, domain, &opts))
}

// CreateRecord creates a DNS record. recordData is a JSON object sent as-is.
func (w *Worker) CreateRecord(ctx context.Context, domain, recordData, options string) (*mcp.CallToolResult, error) {
	body, err := decodeBody("recordData", recordData)
	if err != nil {
		return nil, err
	}
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.CreateRecord(ctx, w.creds, domain, body, &scope))
}

// UpdateRecord patches a DNS record. recordData is a JSON object sent as-is.
func (w *Worker) UpdateRecord(ctx context.Context, recordID, recordData, options string) (*mcp.CallToolResult, error) {
	body, err := decodeBody("recordData", recordData)
	if err != nil {
		return nil, err
	}
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.UpdateRecord(ctx, w.creds, recordID, body, &scope))
}

// RemoveRecord deletes a DNS record.
func (w *Worker) RemoveRecord(ctx context.Context, domain, recordID, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.RemoveRecord(ctx, w.creds, domain, recordID, &scope))
}
