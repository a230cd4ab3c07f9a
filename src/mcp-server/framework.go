// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"os"

	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the implementation name announced during the [MCP] handshake.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
const ServerName = "vercel-mcp"

// VercelAPI is the upstream capability every adapter calls into.
// It mirrors the method set of [vercel.Client] so tests can substitute
// a fake without standing up an HTTP server.
//
// Each method issues exactly one request and returns the raw upstream payload:
// [encoding/json.RawMessage] for JSON bodies, string for anything else.
type VercelAPI interface {
	GetDeploymentEvents(ctx context.Context, creds vercel.Credentials, idOrURL string, opts *vercel.GetDeploymentEventsOptions) (any, error)
	GetDeployment(ctx context.Context, creds vercel.Credentials, idOrURL string, opts *vercel.GetDeploymentOptions) (any, error)
	CancelDeployment(ctx context.Context, creds vercel.Credentials, id string, opts *vercel.Scope) (any, error)
	ListDeploymentFiles(ctx context.Context, creds vercel.Credentials, id string, opts *vercel.Scope) (any, error)
	GetDeploymentFileContents(ctx context.Context, creds vercel.Credentials, id, fileID string, opts *vercel.Scope) (any, error)
	GetDeployments(ctx context.Context, creds vercel.Credentials, opts *vercel.GetDeploymentsOptions) (any, error)
	DeleteDeployment(ctx context.Context, creds vercel.Credentials, id string, opts *vercel.DeleteDeploymentOptions) (any, error)

	GetRecords(ctx context.Context, creds vercel.Credentials, domain string, opts *vercel.GetRecordsOptions) (any, error)
	CreateRecord(ctx context.Context, creds vercel.Credentials, domain string, recordData any, opts *vercel.Scope) (any, error)
	UpdateRecord(ctx context.Context, creds vercel.Credentials, recordID string, recordData any, opts *vercel.Scope) (any, error)
	RemoveRecord(ctx context.Context, creds vercel.Credentials, domain, recordID string, opts *vercel.Scope) (any, error)

	GetDomainConfig(ctx context.Context, creds vercel.Credentials, domain string, opts *vercel.Scope) (any, error)
	GetDomain(ctx context.Context, creds vercel.Credentials, domain string, opts *vercel.Scope) (any, error)
	GetDomains(ctx context.Context, creds vercel.Credentials, opts *vercel.GetDomainsOptions) (any, error)

	GetProjects(ctx context.Context, creds vercel.Credentials, opts *vercel.GetProjectsOptions) (any, error)
	UpdateProject(ctx context.Context, creds vercel.Credentials, idOrName string, projectData any, opts *vercel.Scope) (any, error)

	GetProjectDomains(ctx context.Context, creds vercel.Credentials, idOrName string, opts *vercel.GetProjectDomainsOptions) (any, error)
	GetProjectDomain(ctx context.Context, creds vercel.Credentials, idOrName, domain string, opts *vercel.Scope) (any, error)
	UpdateProjectDomain(ctx context.Context, creds vercel.Credentials, idOrName, domain string, domainData any, opts *vercel.Scope) (any, error)
	RemoveProjectDomain(ctx context.Context, creds vercel.Credentials, idOrName, domain string, opts *vercel.Scope) (any, error)
	AddProjectDomain(ctx context.Context, creds vercel.Credentials, idOrName string, domainData any, opts *vercel.Scope) (any, error)
	VerifyProjectDomain(ctx context.Context, creds vercel.Credentials, idOrName, domain string, opts *vercel.Scope) (any, error)

	FilterProjectEnvs(ctx context.Context, creds vercel.Credentials, idOrName string, opts *vercel.FilterProjectEnvsOptions) (any, error)
	GetProjectEnv(ctx context.Context, creds vercel.Credentials, idOrName, envID string, opts *vercel.Scope) (any, error)
	CreateProjectEnv(ctx context.Context, creds vercel.Credentials, idOrName string, envData any, opts *vercel.CreateProjectEnvOptions) (any, error)
	RemoveProjectEnv(ctx context.Context, creds vercel.Credentials, idOrName, envID string, opts *vercel.Scope) (any, error)
	EditProjectEnv(ctx context.Context, creds vercel.Credentials, idOrName, envID string, envData any, opts *vercel.Scope) (any, error)
}

var _ VercelAPI = (*vercel.Client)(nil)

// Adapter translates one tool invocation into exactly one upstream call.
//
// Parameters:
//   - ctx: Context for cancellation, propagated into the HTTP request
//   - api: The upstream capability
//   - creds: Credential context owned by the entrypoint
//   - args: Tool arguments, already validated against the declared schema
//
// Returns:
//   - The raw upstream payload, handed unchanged to [NewEnvelope]
//   - An error for upstream or precondition failures
type Adapter func(ctx context.Context, api VercelAPI, creds vercel.Credentials, args map[string]any) (any, error)

// ToolDefinition pairs an [MCP] tool declaration with its adapter.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Action: Gerund phrase used in failure text, e.g. "getting deployment"
//   - Role: Optional key exposing the tool name to the instructions template
//   - Adapter: The function that performs the upstream call
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolDefinition struct {
	Tool    mcp.Tool
	Action  string
	Role    string
	Adapter Adapter
}

// ServerDependencies holds all dependencies needed to create the MCP server.
//
// Fields:
//   - Config: Server configuration loaded from file and environment
//   - Embed: Embedded filesystem for templates and documentation
//   - Version: Server version string announced to clients
//   - Credentials: Credential context passed into every adapter call
//   - API: Upstream capability; a [vercel.Client] is built from Config when nil
//   - Logger: Structured logger for adapter failures
//   - Tools: Tool catalog to register
//   - Resources: Static and dynamic resources
//   - Prompts: Workflow prompts built from embedded templates
//   - Instructions: Text sent to clients in the initialize result
//   - PopulateCache: Whether to fill the metadata cache used by info://version
//
// This struct is used internally by ServerBuilder and by [CLIFramework].
type ServerDependencies struct {
	Config        *Config
	Embed         templates.EmbedFS
	Version       string
	Credentials   vercel.Credentials
	API           VercelAPI
	Logger        logger.Logger
	Tools         []ToolDefinition
	Resources     []server.ServerResource
	Prompts       []server.ServerPrompt
	Instructions  string
	PopulateCache bool
}

// ErrMissingCredentials is returned by [ServerBuilder.Build] when no bearer token was configured.
var ErrMissingCredentials = errors.New("missing Vercel API key")

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("1.0.0").
//	    WithCredentials(vercel.Credentials{Token: token}).
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration.
// When no API is supplied, Build derives the upstream client from it.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem for templates.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version string used for identification.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithCredentials sets the credential context passed into every adapter call.
//
// Parameters:
//   - creds: Bearer token plus optional team scope
//
// Returns:
//   - The ServerBuilder instance for method chaining
//
// Build rejects credentials without a token.
func (b *ServerBuilder) WithCredentials(creds vercel.Credentials) *ServerBuilder {
	b.deps.Credentials = creds
	return b
}

// WithAPI replaces the upstream capability, typically with a fake in tests.
func (b *ServerBuilder) WithAPI(api VercelAPI) *ServerBuilder {
	b.deps.API = api
	return b
}

// WithLogger sets the logger used for adapter failures.
func (b *ServerBuilder) WithLogger(l logger.Logger) *ServerBuilder {
	b.deps.Logger = l
	return b
}

// WithTools adds tool definitions to the server.
//
// Parameters:
//   - tools: Variable number of ToolDefinition structs
//
// Returns:
//   - The ServerBuilder instance for method chaining
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithDefaultTools adds the full Vercel tool catalog from createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, createTools()...)
	return b
}

// WithResources adds static and dynamic resources to the MCP server.
//
// Clients access resources using URIs like "info://version".
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds workflow prompts to the MCP server.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithDefaultPrompts adds the Vercel workflow prompts from createPrompts.
func (b *ServerBuilder) WithDefaultPrompts() *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, createPrompts()...)
	return b
}

// WithInstructions sets the instructions sent in the initialize result.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithPopulate enables filling the metadata cache read by resource handlers.
func (b *ServerBuilder) WithPopulate() *ServerBuilder {
	b.deps.PopulateCache = true
	return b
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - [ErrMissingCredentials] when the credential context has no token
//
// Every tool handler is wrapped by withEnvelope, so adapter failures come
// back as text envelopes instead of protocol errors.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Credentials.Token == "" {
		return nil, ErrMissingCredentials
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	}
	instructions := b.deps.Instructions
	if instructions == "" && b.deps.Embed != nil {
		rendered, err := loadInstructions(b.deps.Embed, b.deps.Tools)
		if err != nil {
			return nil, err
		}
		instructions = rendered
	}
	if instructions != "" {
		opts = append(opts, server.WithInstructions(instructions))
	}

	s := server.NewMCPServer(ServerName, b.deps.Version, opts...)

	s.AddTools(b.ServerTools()...)
	s.AddResources(b.deps.Resources...)
	if len(b.deps.Prompts) > 0 {
		s.AddPrompts(b.deps.Prompts...)
	}

	if b.deps.PopulateCache {
		c := getServerCache()
		populateToolMetadataCache(c, b.deps.Tools)
		populateResourceMetadataCache(c, b.deps.Resources)
		populatePromptMetadataCache(c, b.deps.Prompts)
	}

	return s, nil
}

// ServerTools binds every registered definition to the builder's
// credentials, API and logger. The result can be handed to any
// mcp-go server, including [github.com/mark3labs/mcp-go/mcptest].
func (b *ServerBuilder) ServerTools() []server.ServerTool {
	api := b.api()
	log := b.deps.Logger
	if log == nil {
		log = logger.NewMCPLogger(os.Stderr, b.deps.Config != nil && b.deps.Config.Log.Silent)
	}

	tools := make([]server.ServerTool, 0, len(b.deps.Tools))
	for _, def := range b.deps.Tools {
		tools = append(tools, server.ServerTool{
			Tool:    def.Tool,
			Handler: withEnvelope(def, api, b.deps.Credentials, log),
		})
	}
	return tools
}

func (b *ServerBuilder) api() VercelAPI {
	if b.deps.API != nil {
		return b.deps.API
	}
	return NewVercelClient(b.deps.Config, b.deps.Logger)
}
