// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package worker

import (
	"context"
	"strings"

	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"
)

// GetProjects lists projects.
func (w *Worker) GetProjects(ctx context.Context, options string) (*mcp.CallToolResult, error) {
	var opts vercel.GetProjectsOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.GetProjects(ctx, w.creds, &opts))
}

// UpdateProject patches a project. projectData is a JSON object sent as-is.
func (w *Worker) UpdateProject(ctx context.Context, idOrName, projectData, options string) (*mcp.CallToolResult, error) {
	body, err := decodeBody("projectData", projectData)
	if err != nil {
		return nil, err
	}
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.UpdateProject(ctx, w.creds, idOrName, body, &scope))
}

// GetProjectDomains lists the domains of a project.
func (w *Worker) GetProjectDomains(ctx context.Context, idOrName, options string) (*mcp.CallToolResult, error) {
	var opts vercel.GetProjectDomainsOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.GetProjectDomains(ctx, w.creds, idOrName, &opts))
}

// GetProjectDomain returns one domain of a project.
func (w *Worker) GetProjectDomain(ctx context.Context, idOrName, domain, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.GetProjectDomain(ctx, w.creds, idOrName, domain, &scope))
}

// UpdateProjectDomain patches a project domain. domainData is a JSON object sent as-is.
func (w *Worker) UpdateProjectDomain(ctx context.Context, idOrName, domain, domainData, options string) (*mcp.CallToolResult, error) {
	body, err := decodeBody("domainData", domainData)
	if err != nil {
		return nil, err
	}
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.UpdateProjectDomain(ctx, w.creds, idOrName, domain, body, &scope))
}

// RemoveProjectDomain detaches a domain from a project.
func (w *Worker) RemoveProjectDomain(ctx context.Context, idOrName, domain, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.RemoveProjectDomain(ctx, w.creds, idOrName, domain, &scope))
}

// AddProjectDomain attaches a domain to a project. domainData must carry a name.
func (w *Worker) AddProjectDomain(ctx context.Context, idOrName, domainData, options string) (*mcp.CallToolResult, error) {
	body, err := decodeBody("domainData", domainData)
	if err != nil {
		return nil, err
	}
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.AddProjectDomain(ctx, w.creds, idOrName, body, &scope))
}

// VerifyProjectDomain triggers verification of a project domain.
func (w *Worker) VerifyProjectDomain(ctx context.Context, idOrName, domain, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.VerifyProjectDomain(ctx, w.creds, idOrName, domain, &scope))
}

// filterProjectEnvsOptions is the wire form of [vercel.FilterProjectEnvsOptions]
// with target as a comma-joined string.
type filterProjectEnvsOptions struct {
	vercel.Scope
	Target    string `json:"target,omitempty"`
	GitBranch string `json:"gitBranch,omitempty"`
	Decrypt   string `json:"decrypt,omitempty"`
}

// FilterProjectEnvs lists the environment variables of a project.
// A target of "production,preview" becomes two target query keys.
func (w *Worker) FilterProjectEnvs(ctx context.Context, idOrName, options string) (*mcp.CallToolResult, error) {
	var wire filterProjectEnvsOptions
	if err := decodeOptions(options, &wire); err != nil {
		return nil, err
	}

	opts := vercel.FilterProjectEnvsOptions{
		Scope:     wire.Scope,
		GitBranch: wire.GitBranch,
		Decrypt:   wire.Decrypt,
	}
	if targets := lo.Compact(lo.Map(strings.Split(wire.Target, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})); len(targets) > 0 {
		opts.Target = targets
	}

	return envelope(w.api.FilterProjectEnvs(ctx, w.creds, idOrName, &opts))
}

// GetProjectEnv returns one environment variable of a project.
func (w *Worker) GetProjectEnv(ctx context.Context, idOrName, envID, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.GetProjectEnv(ctx, w.creds, idOrName, envID, &scope))
}

// CreateProjectEnv creates one or more environment variables.
// envData is a JSON object or array sent as-is.
func (w *Worker) CreateProjectEnv(ctx context.Context, idOrName, envData, options string) (*mcp.CallToolResult, error) {
	body, err := decodeBody("envData", envData)
	if err != nil {
		return nil, err
	}
	var opts vercel.CreateProjectEnvOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.CreateProjectEnv(ctx, w.creds, idOrName, body, &opts))
}

// RemoveProjectEnv deletes an environment variable.
func (w *Worker) RemoveProjectEnv(ctx context.Context, idOrName, envID, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.RemoveProjectEnv(ctx, w.creds, idOrName, envID, &scope))
}

// EditProjectEnv patches an environment variable. envData is a JSON object sent as-is.
func (w *Worker) EditProjectEnv(ctx context.Context, idOrName, envID, envData, options string) (*mcp.CallToolResult, error) {
	body, err := decodeBody("envData", envData)
	if err != nil {
		return nil, err
	}
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.EditProjectEnv(ctx, w.creds, idOrName, envID, body, &scope))
}
