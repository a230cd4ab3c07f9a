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

// GetDomainsOptions pages through the domains of the account or team.
type GetDomainsOptions struct {
	Scope
	Limit *int   `json:"limit,omitempty" url:"limit,omitempty"`
	Since *int64 `json:"since,omitempty" url:"since,omitempty"`
	Until *int64 `json:"until,omitempty" url:"until,omitempty"`
}

// GetDomainConfig returns how a domain is configured and whether it is misconfigured.
func (c *Client) GetDomainConfig(ctx context.Context, creds Credentials, domain string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v6/domains/%s/config", escape(domain)), opts, nil)
}

// GetDomain returns information about a single domain.
func (c *Client) GetDomain(ctx context.Context, creds Credentials, domain string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v5/domains/%s", escape(domain)), opts, nil)
}

// GetDomains lists registered domains.
func (c *Client) GetDomains(ctx context.Context, creds Credentials, opts *GetDomainsOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet, "/v5/domains", opts, nil)
}
