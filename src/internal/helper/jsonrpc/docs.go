// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for [JSON-RPC 2.0] message handling.
// It includes utilities for normalizing JSON-RPC envelopes (lowercase keys and ID
// types), binding generic argument maps onto typed structs, and strict decoding
// of option strings supplied by worker hosts.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
