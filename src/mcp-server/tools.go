// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// vercelTool declares a tool with the team scoping parameters every Vercel endpoint accepts.
func vercelTool(name string, opts ...mcp.ToolOption) mcp.Tool {
	opts = append(opts,
		mcp.WithString("teamId", mcp.Description("Team ID")),
		mcp.WithString("slug", mcp.Description("Slug")),
		mcp.WithOpenWorldHintAnnotation(true),
	)
	return mcp.NewTool(name, opts...)
}

// readOnly marks tools that only read upstream state.
func readOnly() mcp.ToolOption { return mcp.WithReadOnlyHintAnnotation(true) }

// mutating marks tools that change upstream state. Destructive ones remove data.
func mutating(destructive bool) mcp.ToolOption {
	return func(t *mcp.Tool) {
		mcp.WithReadOnlyHintAnnotation(false)(t)
		mcp.WithDestructiveHintAnnotation(destructive)(t)
	}
}

// objectOrArray lets a parameter be a single object or a list of objects.
func objectOrArray() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["oneOf"] = []any{
			map[string]any{"type": "object"},
			map[string]any{"type": "array", "items": map[string]any{"type": "object"}},
		}
	}
}

// createTools creates and returns all MCP tool definitions with their adapters.
//
// Returns:
//   - A slice of ToolDefinition covering deployments, DNS records, domains,
//     projects, project domains and project environment variables
//
// Tool names, descriptions and parameter names follow the Vercel REST API.
// Optional parameters left out by the caller are omitted from the upstream call.
func createTools() []ToolDefinition {
	return []ToolDefinition{
		// Deployments
		{
			Tool: vercelTool("getDeploymentEvents",
				mcp.WithDescription("Gets deployment events by deployment ID and build ID"),
				mcp.WithString("deploymentId", mcp.Required(), mcp.Description("The ID or URL of the deployment")),
				mcp.WithString("direction", mcp.Enum("forward", "backward"), mcp.Description("Direction of events retrieval")),
				mcp.WithNumber("follow", mcp.Description("Follow parameter for events (default: 0)")),
				mcp.WithNumber("limit", mcp.Description("Limit on number of events to return")),
				mcp.WithString("name", mcp.Description("Filter events by name")),
				mcp.WithNumber("since", mcp.Description("Timestamp to get events from")),
				mcp.WithNumber("until", mcp.Description("Timestamp to get events until")),
				mcp.WithString("statusCode", mcp.Description("Filter events by status code")),
				mcp.WithNumber("delimiter", mcp.Description("Delimiter for events")),
				mcp.WithNumber("builds", mcp.Description("Builds parameter")),
				readOnly(),
			),
			Action:  "getting deployment events",
			Role:    "deploymentLogs",
			Adapter: handleGetDeploymentEvents,
		},
		{
			Tool: vercelTool("getDeployment",
				mcp.WithDescription("Gets a deployment by ID or URL"),
				mcp.WithString("deploymentId", mcp.Required(), mcp.Description("The ID or URL of the deployment")),
				mcp.WithString("withGitRepoInfo", mcp.Description("Include git repository info")),
				readOnly(),
			),
			Action:  "getting deployment",
			Role:    "deploymentInspector",
			Adapter: handleGetDeployment,
		},
		{
			Tool: vercelTool("cancelDeployment",
				mcp.WithDescription("Cancels a deployment"),
				mcp.WithString("deploymentId", mcp.Required(), mcp.Description("The ID of the deployment to cancel")),
				mutating(false),
			),
			Action:  "canceling deployment",
			Adapter: handleCancelDeployment,
		},
		{
			Tool: vercelTool("listDeploymentFiles",
				mcp.WithDescription("Lists deployment files"),
				mcp.WithString("deploymentId", mcp.Required(), mcp.Description("The ID of the deployment")),
				readOnly(),
			),
			Action:  "listing deployment files",
			Role:    "fileLister",
			Adapter: handleListDeploymentFiles,
		},
		{
			Tool: vercelTool("getDeploymentFileContents",
				mcp.WithDescription("Gets deployment file contents"),
				mcp.WithString("deploymentId", mcp.Required(), mcp.Description("The ID of the deployment")),
				mcp.WithString("fileId", mcp.Required(), mcp.Description("The ID of the file")),
				readOnly(),
			),
			Action:  "getting deployment file contents",
			Role:    "fileReader",
			Adapter: handleGetDeploymentFileContents,
		},
		{
			Tool: vercelTool("getDeployments",
				mcp.WithDescription("Lists deployments"),
				mcp.WithString("app", mcp.Description("Application name")),
				mcp.WithNumber("from", mcp.Description("Timestamp to list deployments from")),
				mcp.WithNumber("limit", mcp.Description("Limit on number of deployments to return")),
				mcp.WithString("projectId", mcp.Description("Project ID")),
				mcp.WithString("target", mcp.Description("Deployment target")),
				mcp.WithNumber("to", mcp.Description("Timestamp to list deployments until")),
				mcp.WithString("users", mcp.Description("Filter by users")),
				mcp.WithNumber("since", mcp.Description("Timestamp to get deployments from")),
				mcp.WithNumber("until", mcp.Description("Timestamp to get deployments until")),
				mcp.WithString("state", mcp.Description("Deployment state")),
				readOnly(),
			),
			Action:  "getting deployments",
			Role:    "deploymentLister",
			Adapter: handleGetDeployments,
		},
		{
			Tool: vercelTool("deleteDeployment",
				mcp.WithDescription("Deletes a deployment"),
				mcp.WithString("deploymentId", mcp.Required(), mcp.Description("The ID of the deployment to delete")),
				mcp.WithString("url", mcp.Description("The URL of the deployment")),
				mutating(true),
			),
			Action:  "deleting deployment",
			Adapter: handleDeleteDeployment,
		},

		// DNS records
		{
			Tool: vercelTool("getRecords",
				mcp.WithDescription("List existing DNS records for a domain"),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The domain to list DNS records for")),
				mcp.WithString("limit", mcp.Description("Maximum number of records to list")),
				mcp.WithString("since", mcp.Description("Timestamp to list records from")),
				mcp.WithString("until", mcp.Description("Timestamp to list records until")),
				readOnly(),
			),
			Action:  "getting DNS records",
			Role:    "recordLister",
			Adapter: handleGetRecords,
		},
		{
			Tool: vercelTool("createRecord",
				mcp.WithDescription("Create a DNS record for a domain"),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The domain to create the DNS record for")),
				mcp.WithObject("recordData", mcp.Required(), mcp.Description("The DNS record data, e.g. name, type, value and ttl")),
				mutating(false),
			),
			Action:  "creating DNS record",
			Adapter: handleCreateRecord,
		},
		{
			Tool: vercelTool("updateRecord",
				mcp.WithDescription("Update an existing DNS record"),
				mcp.WithString("recordId", mcp.Required(), mcp.Description("The ID of the DNS record to update")),
				mcp.WithObject("recordData", mcp.Required(), mcp.Description("The updated DNS record data")),
				mutating(false),
			),
			Action:  "updating DNS record",
			Adapter: handleUpdateRecord,
		},
		{
			Tool: vercelTool("removeRecord",
				mcp.WithDescription("Delete a DNS record"),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The domain the DNS record belongs to")),
				mcp.WithString("recordId", mcp.Required(), mcp.Description("The ID of the DNS record to delete")),
				mutating(true),
			),
			Action:  "removing DNS record",
			Adapter: handleRemoveRecord,
		},

		// Domains
		{
			Tool: vercelTool("getDomainConfig",
				mcp.WithDescription("Get a Domain's configuration"),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The domain to get configuration for")),
				readOnly(),
			),
			Action:  "getting domain config",
			Role:    "domainConfig",
			Adapter: handleGetDomainConfig,
		},
		{
			Tool: vercelTool("getDomain",
				mcp.WithDescription("Get information for a single domain"),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The domain to get information for")),
				readOnly(),
			),
			Action:  "getting domain",
			Adapter: handleGetDomain,
		},
		{
			Tool: vercelTool("getDomains",
				mcp.WithDescription("List all domains"),
				mcp.WithNumber("limit", mcp.Description("Maximum number of domains to list")),
				mcp.WithNumber("since", mcp.Description("Timestamp to list domains from")),
				mcp.WithNumber("until", mcp.Description("Timestamp to list domains until")),
				readOnly(),
			),
			Action:  "getting domains",
			Role:    "domainLister",
			Adapter: handleGetDomains,
		},

		// Projects
		{
			Tool: vercelTool("getProjects",
				mcp.WithDescription("Retrieve a list of projects"),
				mcp.WithString("gitForkProtection", mcp.Enum("0", "1"), mcp.Description("Filter by git fork protection")),
				mcp.WithString("repoUrl", mcp.Description("Filter by repository URL")),
				mcp.WithString("search", mcp.Description("Search projects by name")),
				mcp.WithString("limit", mcp.Description("Maximum number of projects to list")),
				readOnly(),
			),
			Action:  "getting projects",
			Role:    "projectLister",
			Adapter: handleGetProjects,
		},
		{
			Tool: vercelTool("updateProject",
				mcp.WithDescription("Update an existing project"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithObject("projectData", mcp.Required(), mcp.Description("The project data to update")),
				mutating(false),
			),
			Action:  "updating project",
			Adapter: handleUpdateProject,
		},

		// Project domains
		{
			Tool: vercelTool("getProjectDomains",
				mcp.WithDescription("Retrieve project domains by project id or name"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("production", mcp.Enum("true", "false"), mcp.Description("Filter production domains")),
				mcp.WithString("customEnvironmentId", mcp.Description("Filter by custom environment ID")),
				mcp.WithString("redirects", mcp.Enum("true", "false"), mcp.Description("Include redirect domains")),
				mcp.WithString("redirect", mcp.Description("Filter by redirect target")),
				mcp.WithNumber("limit", mcp.Description("Maximum number of domains to list")),
				mcp.WithNumber("since", mcp.Description("Timestamp to list domains from")),
				mcp.WithNumber("until", mcp.Description("Timestamp to list domains until")),
				mcp.WithString("order", mcp.Enum("ASC", "DESC"), mcp.Description("Sort order by creation time")),
				readOnly(),
			),
			Action:  "getting project domains",
			Adapter: handleGetProjectDomains,
		},
		{
			Tool: vercelTool("getProjectDomain",
				mcp.WithDescription("Get a project domain"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The project domain name")),
				readOnly(),
			),
			Action:  "getting project domain",
			Adapter: handleGetProjectDomain,
		},
		{
			Tool: vercelTool("updateProjectDomain",
				mcp.WithDescription("Update a project domain"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The project domain name")),
				mcp.WithObject("domainData", mcp.Required(), mcp.Description("The domain data to update")),
				mutating(false),
			),
			Action:  "updating project domain",
			Adapter: handleUpdateProjectDomain,
		},
		{
			Tool: vercelTool("removeProjectDomain",
				mcp.WithDescription("Remove a domain from a project"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The project domain name")),
				mutating(true),
			),
			Action:  "removing project domain",
			Adapter: handleRemoveProjectDomain,
		},
		{
			Tool: vercelTool("addProjectDomain",
				mcp.WithDescription("Add a domain to a project"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithObject("domainData", mcp.Required(), mcp.Description("The domain data; must include name")),
				mutating(false),
			),
			Action:  "adding project domain",
			Role:    "domainAdder",
			Adapter: handleAddProjectDomain,
		},
		{
			Tool: vercelTool("verifyProjectDomain",
				mcp.WithDescription("Verify project domain"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("domain", mcp.Required(), mcp.Description("The domain name to verify")),
				mutating(false),
			),
			Action:  "verifying project domain",
			Role:    "domainVerifier",
			Adapter: handleVerifyProjectDomain,
		},

		// Project environment variables
		{
			Tool: vercelTool("filterProjectEnvs",
				mcp.WithDescription("Retrieve the environment variables of a project by id or name"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("target", mcp.Description("Comma-separated environment targets, e.g. production,preview")),
				mcp.WithString("gitBranch", mcp.Description("Filter by git branch")),
				mcp.WithString("decrypt", mcp.Enum("true", "false"), mcp.Description("Return decrypted values")),
				readOnly(),
			),
			Action:  "filtering project envs",
			Role:    "envLister",
			Adapter: handleFilterProjectEnvs,
		},
		{
			Tool: vercelTool("getProjectEnv",
				mcp.WithDescription("Retrieve the decrypted value of an environment variable of a project by id"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("envId", mcp.Required(), mcp.Description("The ID of the environment variable")),
				readOnly(),
			),
			Action:  "getting project env",
			Adapter: handleGetProjectEnv,
		},
		{
			Tool: vercelTool("createProjectEnv",
				mcp.WithDescription("Create one or more environment variables"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithAny("envData", mcp.Required(), objectOrArray(),
					mcp.Description("The environment variable data or array of environment variables")),
				mcp.WithString("upsert", mcp.Enum("true"), mcp.Description("Update existing variables with the same key")),
				mutating(false),
			),
			Action:  "creating project env",
			Role:    "envCreator",
			Adapter: handleCreateProjectEnv,
		},
		{
			Tool: vercelTool("removeProjectEnv",
				mcp.WithDescription("Remove an environment variable"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("envId", mcp.Required(), mcp.Description("The ID of the environment variable")),
				mutating(true),
			),
			Action:  "removing project env",
			Adapter: handleRemoveProjectEnv,
		},
		{
			Tool: vercelTool("editProjectEnv",
				mcp.WithDescription("Edit an environment variable"),
				mcp.WithString("idOrName", mcp.Required(), mcp.Description("The ID or name of the project")),
				mcp.WithString("envId", mcp.Required(), mcp.Description("The ID of the environment variable")),
				mcp.WithObject("envData", mcp.Required(), mcp.Description("The environment variable data to update")),
				mutating(false),
			),
			Action:  "editing project env",
			Adapter: handleEditProjectEnv,
		},
	}
}
