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

// GetDeploymentEvents returns the build logs of a deployment.
// A follow value in options is forwarded; otherwise the client sends follow=0.
func (w *Worker) GetDeploymentEvents(ctx context.Context, deploymentID, options string) (*mcp.CallToolResult, error) {
	var opts vercel.GetDeploymentEventsOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.GetDeploymentEvents(ctx, w.creds, deploymentID, &opts))
}

// GetDeployment returns a deployment by ID or URL.
func (w *Worker) GetDeployment(ctx context.Context, deploymentID, options string) (*mcp.CallToolResult, error) {
	var opts vercel.GetDeploymentOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.GetDeployment(ctx, w.creds, deploymentID, &opts))
}

// CancelDeployment cancels a deployment that is still building.
func (w *Worker) CancelDeployment(ctx context.Context, deploymentID, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.CancelDeployment(ctx, w.creds, deploymentID, &scope))
}

// ListDeploymentFiles lists the file tree of a deployment.
func (w *Worker) ListDeploymentFiles(ctx context.Context, deploymentID, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.ListDeploymentFiles(ctx, w.creds, deploymentID, &scope))
}

// GetDeploymentFileContents returns a single file of a deployment.
func (w *Worker) GetDeploymentFileContents(ctx context.Context, deploymentID, fileID, options string) (*mcp.CallToolResult, error) {
	var scope vercel.Scope
	if err := decodeOptions(options, &scope); err != nil {
		return nil, err
	}
	return envelope(w.api.GetDeploymentFileContents(ctx, w.creds, deploymentID, fileID, &scope))
}

// GetDeployments lists deployments.
func (w *Worker) GetDeployments(ctx context.Context, options string) (*mcp.CallToolResult, error) {
	var opts vercel.GetDeploymentsOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.GetDeployments(ctx, w.creds, &opts))
}

// DeleteDeployment removes a deployment.
func (w *Worker) DeleteDeployment(ctx context.Context, deploymentID, options string) (*mcp.CallToolResult, error) {
	var opts vercel.DeleteDeploymentOptions
	if err := decodeOptions(options, &opts); err != nil {
		return nil, err
	}
	return envelope(w.api.DeleteDeployment(ctx, w.creds, deploymentID, &opts))
}
