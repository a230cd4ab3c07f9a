// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package vercel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetProjectsOptions filters the project listing.
type GetProjectsOptions struct {
	Scope
	GitForkProtection string `json:"gitForkProtection,omitempty" url:"gitForkProtection,omitempty"`
	RepoURL           string `json:"repoUrl,omitempty" url:"repoUrl,omitempty"`
	Search            string `json:"search,omitempty" url:"search,omitempty"`
	Limit             string `json:"limit,omitempty" url:"limit,omitempty"`
}

// GetProjects lists projects.
func (c *Client) GetProjects(ctx context.Context, creds Credentials, opts *GetProjectsOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet, "/v10/projects", opts, nil)
}

// UpdateProject patches a project. projectData is sent as-is.
func (c *Client) UpdateProject(ctx context.Context, creds Credentials, idOrName string, projectData any, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPatch,
		fmt.Sprintf("/v9/projects/%s", escape(idOrName)), opts, projectData)
}

// GetProjectDomainsOptions filters the domains attached to a project.
type GetProjectDomainsOptions struct {
	Scope
	Production          string `json:"production,omitempty" url:"production,omitempty"`
	CustomEnvironmentID string `json:"customEnvironmentId,omitempty" url:"customEnvironmentId,omitempty"`
	Redirects           string `json:"redirects,omitempty" url:"redirects,omitempty"`
	Redirect            string `json:"redirect,omitempty" url:"redirect,omitempty"`
	Limit               *int   `json:"limit,omitempty" url:"limit,omitempty"`
	Since               *int64 `json:"since,omitempty" url:"since,omitempty"`
	Until               *int64 `json:"until,omitempty" url:"until,omitempty"`
	Order               string `json:"order,omitempty" url:"order,omitempty"`
}

// GetProjectDomains lists the domains of a project.
func (c *Client) GetProjectDomains(ctx context.Context, creds Credentials, idOrName string, opts *GetProjectDomainsOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v9/projects/%s/domains", escape(idOrName)), opts, nil)
}

// GetProjectDomain returns one domain of a project.
func (c *Client) GetProjectDomain(ctx context.Context, creds Credentials, idOrName, domain string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v9/projects/%s/domains/%s", escape(idOrName), escape(domain)), opts, nil)
}

// UpdateProjectDomain patches a project domain. domainData is sent as-is.
func (c *Client) UpdateProjectDomain(ctx context.Context, creds Credentials, idOrName, domain string, domainData any, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPatch,
		fmt.Sprintf("/v9/projects/%s/domains/%s", escape(idOrName), escape(domain)), opts, domainData)
}

// RemoveProjectDomain detaches a domain from a project.
func (c *Client) RemoveProjectDomain(ctx context.Context, creds Credentials, idOrName, domain string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodDelete,
		fmt.Sprintf("/v9/projects/%s/domains/%s", escape(idOrName), escape(domain)), opts, nil)
}

// AddProjectDomain attaches a domain to a project.
//
// domainData must carry a non-empty "name"; otherwise [ErrMissingDomainName]
// is returned and no request is made.
func (c *Client) AddProjectDomain(ctx context.Context, creds Credentials, idOrName string, domainData any, opts *Scope) (any, error) {
	if !hasName(domainData) {
		return nil, ErrMissingDomainName
	}
	return c.sendRequest(ctx, creds, http.MethodPost,
		fmt.Sprintf("/v10/projects/%s/domains", escape(idOrName)), opts, domainData)
}

// VerifyProjectDomain triggers verification of a project domain.
func (c *Client) VerifyProjectDomain(ctx context.Context, creds Credentials, idOrName, domain string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPost,
		fmt.Sprintf("/v9/projects/%s/domains/%s/verify", escape(idOrName), escape(domain)), opts, nil)
}

// FilterProjectEnvsOptions filters the environment variables of a project.
// Each Target entry is sent as its own target= query parameter.
type FilterProjectEnvsOptions struct {
	Scope
	Target    []string `json:"target,omitempty" url:"target,omitempty"`
	GitBranch string   `json:"gitBranch,omitempty" url:"gitBranch,omitempty"`
	Decrypt   string   `json:"decrypt,omitempty" url:"decrypt,omitempty"`
}

// FilterProjectEnvs lists the environment variables of a project.
func (c *Client) FilterProjectEnvs(ctx context.Context, creds Credentials, idOrName string, opts *FilterProjectEnvsOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v9/projects/%s/env", escape(idOrName)), opts, nil)
}

// GetProjectEnv returns the decrypted value of one environment variable.
func (c *Client) GetProjectEnv(ctx context.Context, creds Credentials, idOrName, envID string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodGet,
		fmt.Sprintf("/v1/projects/%s/env/%s", escape(idOrName), escape(envID)), opts, nil)
}

// CreateProjectEnvOptions controls environment variable creation.
type CreateProjectEnvOptions struct {
	Scope
	Upsert string `json:"upsert,omitempty" url:"upsert,omitempty"`
}

// CreateProjectEnv creates one or more environment variables.
// envData is a single object or an array of objects and is sent as-is.
func (c *Client) CreateProjectEnv(ctx context.Context, creds Credentials, idOrName string, envData any, opts *CreateProjectEnvOptions) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPost,
		fmt.Sprintf("/v10/projects/%s/env", escape(idOrName)), opts, envData)
}

// RemoveProjectEnv deletes an environment variable.
func (c *Client) RemoveProjectEnv(ctx context.Context, creds Credentials, idOrName, envID string, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodDelete,
		fmt.Sprintf("/v9/projects/%s/env/%s", escape(idOrName), escape(envID)), opts, nil)
}

// EditProjectEnv patches an environment variable. envData is sent as-is.
func (c *Client) EditProjectEnv(ctx context.Context, creds Credentials, idOrName, envID string, envData any, opts *Scope) (any, error) {
	return c.sendRequest(ctx, creds, http.MethodPatch,
		fmt.Sprintf("/v9/projects/%s/env/%s", escape(idOrName), escape(envID)), opts, envData)
}

// hasName reports whether a payload carries a non-empty "name" property.
func hasName(v any) bool {
	if v == nil {
		return false
	}

	data, err := json.Marshal(v)
	if err != nil {
		return false
	}

	var payload struct {
		Name any `json:"name"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return false
	}

	switch name := payload.Name.(type) {
	case nil:
		return false
	case string:
		return name != ""
	case bool:
		return name
	default:
		return true
	}
}
