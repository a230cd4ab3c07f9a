// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackExecutableName is reported when os.Args[0] is unavailable.
const FallbackExecutableName = "vercel-mcp"

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It is used to print the "Usage: <name> VERCEL_API_KEY=<YOUR_API_KEY>" hint.
//
//   - Linux/macOS: "vercel-mcp" from "/usr/local/bin/vercel-mcp"
//   - Windows: "vercel-mcp" from "C:\bin\vercel-mcp.exe"
//   - Fallback: [FallbackExecutableName] if os.Args[0] is unavailable
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackExecutableName
	}
	return executableName(os.Args[0])
}

// executableName strips directories from either separator style and a trailing ".exe".
func executableName(arg0 string) string {
	name := filepath.Base(arg0)

	// A Windows path seen on Unix (or the reverse) survives filepath.Base intact.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
