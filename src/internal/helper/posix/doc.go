// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// # Usage Examples
//
//	import "github.com/H0llyW00dzZ/vercel-mcp/src/internal/helper/posix"
//
//	fmt.Fprintf(os.Stderr, "Usage: %s VERCEL_API_KEY=<YOUR_API_KEY>\n", posix.GetExecutableName())
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
