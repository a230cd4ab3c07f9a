// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
)

// handleGetDeploymentEvents retrieves the build logs of a deployment.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - api: Upstream capability
//   - creds: Credential context
//   - args: Must contain "deploymentId"; every other key is optional
//
// Returns:
//   - The raw upstream payload
//   - An error if the argument is missing or the upstream call fails
//
// A caller supplied follow value is forwarded. When absent the client sends follow=0
// so the response is a finite log listing and not an open stream.
func handleGetDeploymentEvents(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	deploymentID, err := requireString(args, "deploymentId")
	if err != nil {
		return nil, err
	}

	var opts vercel.GetDeploymentEventsOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.GetDeploymentEvents(ctx, creds, deploymentID, &opts)
}

// handleGetDeployment retrieves a deployment by ID or URL.
func handleGetDeployment(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	deploymentID, err := requireString(args, "deploymentId")
	if err != nil {
		return nil, err
	}

	var opts vercel.GetDeploymentOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.GetDeployment(ctx, creds, deploymentID, &opts)
}

// handleCancelDeployment cancels a deployment that is still building.
func handleCancelDeployment(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	deploymentID, err := requireString(args, "deploymentId")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.CancelDeployment(ctx, creds, deploymentID, &scope)
}

// handleListDeploymentFiles lists the file tree of a deployment.
func handleListDeploymentFiles(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	deploymentID, err := requireString(args, "deploymentId")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.ListDeploymentFiles(ctx, creds, deploymentID, &scope)
}

// handleGetDeploymentFileContents returns one file of a deployment.
// Non-JSON file contents come back as a plain string and are enveloped verbatim.
func handleGetDeploymentFileContents(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	deploymentID, err := requireString(args, "deploymentId")
	if err != nil {
		return nil, err
	}

	fileID, err := requireString(args, "fileId")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.GetDeploymentFileContents(ctx, creds, deploymentID, fileID, &scope)
}

// handleGetDeployments lists deployments.
func handleGetDeployments(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	var opts vercel.GetDeploymentsOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.GetDeployments(ctx, creds, &opts)
}

// handleDeleteDeployment deletes a deployment.
func handleDeleteDeployment(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	deploymentID, err := requireString(args, "deploymentId")
	if err != nil {
		return nil, err
	}

	var opts vercel.DeleteDeploymentOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.DeleteDeployment(ctx, creds, deploymentID, &opts)
}

// handleGetRecords lists the DNS records of a domain.
func handleGetRecords(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	var opts vercel.GetRecordsOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.GetRecords(ctx, creds, domain, &opts)
}

// handleCreateRecord creates a DNS record.
func handleCreateRecord(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	recordData, err := requireBody(args, "recordData")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.CreateRecord(ctx, creds, domain, recordData, &scope)
}

// handleUpdateRecord updates a DNS record.
func handleUpdateRecord(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	recordID, err := requireString(args, "recordId")
	if err != nil {
		return nil, err
	}

	recordData, err := requireBody(args, "recordData")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.UpdateRecord(ctx, creds, recordID, recordData, &scope)
}

// handleRemoveRecord deletes a DNS record.
func handleRemoveRecord(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	recordID, err := requireString(args, "recordId")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.RemoveRecord(ctx, creds, domain, recordID, &scope)
}

// handleGetDomainConfig returns the DNS configuration state of a domain.
func handleGetDomainConfig(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.GetDomainConfig(ctx, creds, domain, &scope)
}

// handleGetDomain returns a single domain.
func handleGetDomain(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.GetDomain(ctx, creds, domain, &scope)
}

// handleGetDomains lists domains.
func handleGetDomains(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	var opts vercel.GetDomainsOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.GetDomains(ctx, creds, &opts)
}

// handleGetProjects lists projects.
func handleGetProjects(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	var opts vercel.GetProjectsOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.GetProjects(ctx, creds, &opts)
}

// handleUpdateProject updates a project.
func handleUpdateProject(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	projectData, err := requireBody(args, "projectData")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.UpdateProject(ctx, creds, idOrName, projectData, &scope)
}

// handleGetProjectDomains lists the domains of a project.
func handleGetProjectDomains(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	var opts vercel.GetProjectDomainsOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.GetProjectDomains(ctx, creds, idOrName, &opts)
}

// handleGetProjectDomain returns one domain of a project.
func handleGetProjectDomain(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.GetProjectDomain(ctx, creds, idOrName, domain, &scope)
}

// handleUpdateProjectDomain updates one domain of a project.
func handleUpdateProjectDomain(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	domainData, err := requireBody(args, "domainData")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.UpdateProjectDomain(ctx, creds, idOrName, domain, domainData, &scope)
}

// handleRemoveProjectDomain detaches a domain from a project.
func handleRemoveProjectDomain(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.RemoveProjectDomain(ctx, creds, idOrName, domain, &scope)
}

// handleAddProjectDomain attaches a domain to a project.
// The client rejects a payload without "name" before any request is made.
func handleAddProjectDomain(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	domainData, err := requireBody(args, "domainData")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.AddProjectDomain(ctx, creds, idOrName, domainData, &scope)
}

// handleVerifyProjectDomain triggers verification of a project domain.
func handleVerifyProjectDomain(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	domain, err := requireString(args, "domain")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.VerifyProjectDomain(ctx, creds, idOrName, domain, &scope)
}

// handleFilterProjectEnvs lists the environment variables of a project.
//
// The "target" argument is a comma-joined string. It is split into discrete
// values, which the client sends as repeated target query keys.
func handleFilterProjectEnvs(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	var opts vercel.FilterProjectEnvsOptions
	if err := bindOptions(args, &opts, "target"); err != nil {
		return nil, err
	}
	if target, ok := args["target"].(string); ok {
		opts.Target = splitList(target)
	}

	return api.FilterProjectEnvs(ctx, creds, idOrName, &opts)
}

// handleGetProjectEnv returns one environment variable of a project.
func handleGetProjectEnv(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	envID, err := requireString(args, "envId")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.GetProjectEnv(ctx, creds, idOrName, envID, &scope)
}

// handleCreateProjectEnv creates one or more environment variables.
// envData may be a single object or an array of objects.
func handleCreateProjectEnv(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	envData, err := requireBody(args, "envData")
	if err != nil {
		return nil, err
	}

	var opts vercel.CreateProjectEnvOptions
	if err := bindOptions(args, &opts); err != nil {
		return nil, err
	}

	return api.CreateProjectEnv(ctx, creds, idOrName, envData, &opts)
}

// handleRemoveProjectEnv deletes an environment variable.
func handleRemoveProjectEnv(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	envID, err := requireString(args, "envId")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.RemoveProjectEnv(ctx, creds, idOrName, envID, &scope)
}

// handleEditProjectEnv updates an environment variable.
func handleEditProjectEnv(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error) {
	idOrName, err := requireString(args, "idOrName")
	if err != nil {
		return nil, err
	}

	envID, err := requireString(args, "envId")
	if err != nil {
		return nil, err
	}

	envData, err := requireBody(args, "envData")
	if err != nil {
		return nil, err
	}

	var scope vercel.Scope
	if err := bindOptions(args, &scope); err != nil {
		return nil, err
	}

	return api.EditProjectEnv(ctx, creds, idOrName, envID, envData, &scope)
}
