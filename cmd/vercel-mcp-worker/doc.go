// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// vercel-mcp-worker serves the Vercel tool set over HTTP.
//
// The bearer token comes from the environment (VERCEL_API_TOKEN) or from the
// configuration file named by MCP_VERCEL_CONFIG_FILE. The worker mounts:
//
//	/mcp      MCP streamable HTTP transport (stateless)
//	/rpc      JSON-RPC 2.0 calls onto worker methods, e.g.
//	          {"jsonrpc":"2.0","id":1,"method":"getDeployment","params":["dpl_1","{}"]}
//	/healthz  liveness probe
//
// # Usage
//
//	VERCEL_API_TOKEN=<YOUR_API_KEY> vercel-mcp-worker
//
// The listen address defaults to :8787 and is set by server.addr in the
// configuration file. SIGINT and SIGTERM drain in-flight requests before exit.
package main
