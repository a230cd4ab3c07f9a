// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package worker exposes the Vercel adapters as methods for edge-worker style hosts.
// Each [Worker] method takes its required identifiers as strings plus one JSON-encoded
// options string, performs exactly one upstream call and returns the text envelope.
//
// Unlike the MCP tool handlers there is no failure boundary here: malformed JSON and
// upstream failures are returned as Go errors for the host to handle.
//
// [Proxy] dispatches [JSON-RPC 2.0] requests onto [Worker] methods by name.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package worker
