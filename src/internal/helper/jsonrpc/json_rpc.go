// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Marshal normalizes a JSON-RPC envelope to lowercase top-level keys with a
// default "jsonrpc" version, so that loosely written clients
// (e.g. {"Method":"getDeployment"}) decode with a strict codec.
//
// Only the envelope keys are folded. Params are left untouched.
//
// Parameters:
//   - data: Raw JSON-RPC message
//
// Returns:
//   - []byte: Normalized JSON data
//   - error: Error if the message is not a JSON object
func Marshal(data []byte) ([]byte, error) {
	var temp map[string]any
	if err := json.Unmarshal(data, &temp); err != nil {
		return nil, err
	}

	return json.Marshal(Map(temp))
}

// Map converts a decoded JSON-RPC envelope to canonical lowercase key form.
//
//   - "id": an empty object becomes null, whole number floats become int64
//   - "jsonrpc": defaults to "2.0" when missing
func Map(temp map[string]any) map[string]any {
	fixed := make(map[string]any, len(temp)+1)
	for k, v := range temp {
		key := strings.ToLower(k)
		switch key {
		case "id":
			if idMap, ok := v.(map[string]any); ok && len(idMap) == 0 {
				fixed["id"] = nil
			} else {
				fixed["id"] = normalizeIDValue(v)
			}
		default:
			fixed[key] = v
		}
	}

	if _, ok := fixed["jsonrpc"]; !ok {
		fixed["jsonrpc"] = mcp.JSONRPC_VERSION
	}

	return fixed
}

// normalizeIDValue converts whole number float64 values to int64.
func normalizeIDValue(v any) any {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int64(f)
	}
	return v
}

// UnmarshalFromMap converts a map/any to a struct via JSON round-trip.
//
// Tool handlers use it to bind the loosely typed argument map of a
// CallToolRequest onto a typed option record.
//
// Parameters:
//   - src: Source map or value to convert
//   - dest: Pointer to destination struct
//
// Returns:
//   - error: Error if marshaling or unmarshaling fails
func UnmarshalFromMap(src any, dest any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// DecodeStrict decodes a single JSON object into dest, rejecting unknown
// fields and trailing data. Empty or whitespace-only input leaves dest unchanged.
//
// Parameters:
//   - data: JSON text, usually an options string passed by a worker host
//   - dest: Pointer to destination struct
//
// Returns:
//   - error: Error if the text is malformed or names an unknown field
func DecodeStrict(data string, dest any) error {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON value")
	}

	return nil
}
