// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"os"

	"github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/vercel-mcp/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is used in the initialize handshake, the info://version
// resource and the User-Agent of upstream requests.
//
// Returns:
//   - string: The current server version (e.g., "1.0.0")
func GetVersion() string {
	return appVersion
}

// Run starts the stdio MCP server exposing the Vercel tool catalog.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "1.0.0")
//
// Returns:
//   - error: [ErrMissingCredentials] when no token was supplied,
//     otherwise configuration, build or runtime errors
//
// Server Lifecycle:
//  1. Parse VERCEL_API_KEY=<key> and flags from os.Args
//  2. Load configuration from --config or MCP_VERCEL_CONFIG_FILE
//  3. Build the MCP server using ServerBuilder
//  4. Serve JSON-RPC over stdin/stdout until EOF or SIGINT/SIGTERM
func Run(version string) error {
	appVersion = version

	cli := NewCLIFramework(os.Getenv(EnvConfigFile), ServerDependencies{
		Embed:         templates.MagicEmbed,
		Version:       version,
		Tools:         createTools(),
		Resources:     createResources(),
		Prompts:       createPrompts(),
		PopulateCache: true,
	})

	return cli.BuildRootCommand().ExecuteContext(context.Background())
}
