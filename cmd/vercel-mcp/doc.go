// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// vercel-mcp is a Model Context Protocol server exposing the Vercel REST API
// (deployments, DNS records, domains, projects and environment variables)
// as tools over stdio.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/vercel-mcp/cmd/vercel-mcp@latest
//
// # Usage
//
//	vercel-mcp VERCEL_API_KEY=<YOUR_API_KEY> [FLAGS]
//
// # Flags
//
//	    --config        Path to a JSON or YAML configuration file
//	    --instructions  Print the server instructions and exit
//	-h, --help          Help for vercel-mcp
//
// # Commands
//
//	tools   List every tool as a markdown table
//
// # Examples
//
// Register the server with an MCP client:
//
//	{
//	  "mcpServers": {
//	    "vercel": {
//	      "command": "vercel-mcp",
//	      "args": ["VERCEL_API_KEY=<YOUR_API_KEY>"]
//	    }
//	  }
//	}
//
// Scope every call to a team through the configuration file:
//
//	MCP_VERCEL_CONFIG_FILE=config.yaml vercel-mcp VERCEL_API_KEY=<YOUR_API_KEY>
package main
