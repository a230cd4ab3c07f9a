// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
	ReadOnly    bool
}

// loadInstructions renders vercel_instructions.md with the given tool catalog.
//
// Parameters:
//   - fs: Embedded filesystem holding the template
//   - tools: Slice of tool definitions to describe
//
// Returns:
//   - string: The rendered instruction text
//   - error: If the embedded file cannot be read or template parsing fails
func loadInstructions(fs templates.EmbedFS, tools []ToolDefinition) (string, error) {
	templateBytes, err := fs.ReadFile("vercel_instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{
		Tools:     make([]toolInfo, 0, len(tools)),
		ToolRoles: make(map[string]string),
	}

	for _, tool := range tools {
		readOnly := tool.Tool.Annotations.ReadOnlyHint != nil && *tool.Tool.Annotations.ReadOnlyHint
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
			ReadOnly:    readOnly,
		})

		if tool.Role != "" {
			data.ToolRoles[tool.Role] = tool.Tool.Name
		}
	}

	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}

// Cache structure for server capabilities
type serverCache struct {
	mu        sync.RWMutex
	tools     []map[string]any
	resources []map[string]any
	prompts   []map[string]any
}

// Global cache instance with sync.Once for thread-safe lazy initialization
var (
	cache     *serverCache
	cacheOnce sync.Once
)

// getServerCache returns the lazily initialized server cache.
// Uses sync.Once to ensure initialization happens exactly once, even with concurrent access.
func getServerCache() *serverCache {
	cacheOnce.Do(func() {
		cache = &serverCache{}
	})
	return cache
}

// loadToolsConfig returns the cached tool metadata.
func loadToolsConfig() []map[string]any {
	c := getServerCache()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tools
}

// loadResourcesConfig returns the cached resource metadata.
func loadResourcesConfig() []map[string]any {
	c := getServerCache()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resources
}

// loadPromptsConfig returns the cached prompt metadata.
func loadPromptsConfig() []map[string]any {
	c := getServerCache()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prompts
}

// populateToolMetadataCache extracts metadata from the tool catalog and caches it for resource handlers.
// It is called from [ServerBuilder.Build] when WithPopulate() is used.
func populateToolMetadataCache(serverCache *serverCache, tools []ToolDefinition) {
	metadata := make([]map[string]any, 0, len(tools))
	for _, toolDef := range tools {
		tool := toolDef.Tool
		entry := map[string]any{
			"name":        tool.Name,
			"description": tool.Description,
			"parameters":  tool.InputSchema.Properties,
		}
		if len(tool.InputSchema.Required) > 0 {
			entry["required"] = tool.InputSchema.Required
		}
		metadata = append(metadata, entry)
	}

	serverCache.mu.Lock()
	serverCache.tools = metadata
	serverCache.mu.Unlock()
}

// populateResourceMetadataCache extracts metadata from created resources and caches it for resource handlers.
func populateResourceMetadataCache(serverCache *serverCache, resources []server.ServerResource) {
	metadata := make([]map[string]any, 0, len(resources))
	for _, resourceDef := range resources {
		resource := resourceDef.Resource
		metadata = append(metadata, map[string]any{
			"uri":         resource.URI,
			"name":        resource.Name,
			"description": resource.Description,
			"mimeType":    resource.MIMEType,
		})
	}

	serverCache.mu.Lock()
	serverCache.resources = metadata
	serverCache.mu.Unlock()
}

// populatePromptMetadataCache extracts metadata from created prompts and caches it for resource handlers.
func populatePromptMetadataCache(serverCache *serverCache, prompts []server.ServerPrompt) {
	metadata := make([]map[string]any, 0, len(prompts))
	for _, promptDef := range prompts {
		prompt := promptDef.Prompt
		entry := map[string]any{
			"name":        prompt.Name,
			"description": prompt.Description,
		}
		if len(prompt.Arguments) > 0 {
			args := make([]map[string]any, 0, len(prompt.Arguments))
			for _, arg := range prompt.Arguments {
				args = append(args, map[string]any{
					"name":        arg.Name,
					"description": arg.Description,
					"required":    arg.Required,
				})
			}
			entry["arguments"] = args
		}
		metadata = append(metadata, entry)
	}

	serverCache.mu.Lock()
	serverCache.prompts = metadata
	serverCache.mu.Unlock()
}
