// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server that exposes the [Vercel REST API] as tools.
// Each tool performs exactly one upstream request through a [VercelAPI] implementation
// and returns the upstream JSON as pretty-printed text. Failures are reported as
// "Error <action>: <message>" text results rather than protocol errors.
//
// The server is assembled with [ServerBuilder] and started over stdio by [Run],
// which parses the command line through [CLIFramework].
//
// Besides tools, the server offers two resources (config://template and
// info://version) and workflow prompts rendered from embedded templates.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [Vercel REST API]: https://vercel.com/docs/rest-api
package mcpserver
