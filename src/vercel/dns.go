// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package vercel

import (
	"context"
	"fmt"
	"net/http"
)

// GetRecordsOptions pages through the DNS records of a domain.
// The upstream takes these as strings, so they are kept as strings here.
type GetRecordsOptions struct {
	Scope
	Limit string `json:"limit,omitempty" url:"limit,omitempty"`
	Since string `json:"since,omitempty" url:"since,omitempty"`
	Until string `json:"until,omitempty" url:"until,omitempty"`
}

// GetRecords lists the DNS records of a domain.
func (c *Client) GetRecords(ctx context.Context, creds Credentials, domain string, opts *GetRecordsOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v4/domains/%s/records", escape(domain)), opts, nil)
}

// CreateRecord adds a DNS record. recordData is sent as-is.
func (c *Client) CreateRecord(ctx context.Context, creds Credentials, domain string, recordData any, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPost,
		fmt.Sprintf("/v2/domains/%s/records", escape(domain)), opts, recordData)
}

// UpdateRecord patches an existing DNS record. recordData is sent as-is.
func (c *Client) UpdateRecord(ctx context.Context, creds Credentials, recordID string, recordData any, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPatch,
		fmt.Sprintf("/v1/domains/records/%s", escape(recordID)), opts, recordData)
}

// RemoveRecord deletes a DNS record.
func (c *Client) RemoveRecord(ctx context.Context, creds Credentials, domain, recordID string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodDelete,
		fmt.Sprintf("/v2/domains/%s/records/%s", escape(domain), escape(recordID)), opts, nil)
}
