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

// GetDeploymentEventsOptions filters the build log stream of a deployment.
type GetDeploymentEventsOptions struct {
	Scope
	Direction  string `json:"direction,omitempty" url:"direction,omitempty"`
	Follow     *int   `json:"follow,omitempty" url:"follow,omitempty"`
	Limit      *int   `json:"limit,omitempty" url:"limit,omitempty"`
	Name       string `json:"name,omitempty" url:"name,omitempty"`
	Since      *int64 `json:"since,omitempty" url:"since,omitempty"`
	Until      *int64 `json:"until,omitempty" url:"until,omitempty"`
	StatusCode string `json:"statusCode,omitempty" url:"statusCode,omitempty"`
	Delimiter  *int   `json:"delimiter,omitempty" url:"delimiter,omitempty"`
	Builds     *int   `json:"builds,omitempty" url:"builds,omitempty"`
}

// GetDeploymentOptions controls the single deployment lookup.
type GetDeploymentOptions struct {
	Scope
	WithGitRepoInfo string `json:"withGitRepoInfo,omitempty" url:"withGitRepoInfo,omitempty"`
}

// GetDeploymentsOptions filters the deployment listing.
type GetDeploymentsOptions struct {
	Scope
	App       string `json:"app,omitempty" url:"app,omitempty"`
	From      *int64 `json:"from,omitempty" url:"from,omitempty"`
	Limit     *int   `json:"limit,omitempty" url:"limit,omitempty"`
	ProjectID string `json:"projectId,omitempty" url:"projectId,omitempty"`
	Target    string `json:"target,omitempty" url:"target,omitempty"`
	To        *int64 `json:"to,omitempty" url:"to,omitempty"`
	Users     string `json:"users,omitempty" url:"users,omitempty"`
	Since     *int64 `json:"since,omitempty" url:"since,omitempty"`
	Until     *int64 `json:"until,omitempty" url:"until,omitempty"`
	State     string `json:"state,omitempty" url:"state,omitempty"`
}

// DeleteDeploymentOptions selects the deployment to delete by URL instead of id.
type DeleteDeploymentOptions struct {
	Scope
	URL string `json:"url,omitempty" url:"url,omitempty"`
}

// GetDeploymentEvents returns the build logs of a deployment.
//
// The stream is never followed unless the caller asks for it: follow=0 is
// sent whenever opts leaves Follow unset, so the call always terminates.
func (c *Client) GetDeploymentEvents(ctx context.Context, creds Credentials, idOrURL string, opts *GetDeploymentEventsOptions) (any, error) {
	o := GetDeploymentEventsOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Follow == nil {
		noFollow := 0
		o.Follow = &noFollow
	}

	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v3/deployments/%s/events", escape(idOrURL)), &o, nil)
}

// GetDeployment returns a deployment by id or URL.
func (c *Client) GetDeployment(ctx context.Context, creds Credentials, idOrURL string, opts *GetDeploymentOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v13/deployments/%s", escape(idOrURL)), opts, nil)
}

// CancelDeployment stops a deployment that is still building.
func (c *Client) CancelDeployment(ctx context.Context, creds Credentials, id string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPatch,
		fmt.Sprintf("/v12/deployments/%s/cancel", escape(id)), opts, nil)
}

// ListDeploymentFiles returns the file tree of a deployment.
func (c *Client) ListDeploymentFiles(ctx context.Context, creds Credentials, id string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v6/deployments/%s/files", escape(id)), opts, nil)
}

// GetDeploymentFileContents returns a single file of a deployment.
func (c *Client) GetDeploymentFileContents(ctx context.Context, creds Credentials, id, fileID string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v7/deployments/%s/files/%s", escape(id), escape(fileID)), opts, nil)
}

// GetDeployments lists deployments.
func (c *Client) GetDeployments(ctx context.Context, creds Credentials, opts *GetDeploymentsOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet, "/v6/deployments", opts, nil)
}

// DeleteDeployment removes a deployment.
func (c *Client) DeleteDeployment(ctx context.Context, creds Credentials, id string, opts *DeleteDeploymentOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodDelete,
		fmt.Sprintf("/v13/deployments/%s", escape(id)), opts, nil)
}
