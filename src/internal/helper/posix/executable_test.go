// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Relative path", args: []string{"./vercel-mcp"}, expected: "vercel-mcp"},
		{name: "Just filename", args: []string{"vercel-mcp"}, expected: "vercel-mcp"},
		{name: "Absolute unix path", args: []string{"/usr/local/bin/vercel-mcp"}, expected: "vercel-mcp"},
		{name: "Windows path", args: []string{`C:\bin\vercel-mcp.exe`}, expected: "vercel-mcp"},
		{name: "Windows relative path", args: []string{`.\vercel-mcp-worker.exe`}, expected: "vercel-mcp-worker"},
		{name: "Other extension kept", args: []string{"/opt/vercel-mcp.bin"}, expected: "vercel-mcp.bin"},
		{name: "Empty args", args: []string{}, expected: FallbackExecutableName},
		{name: "Empty first arg", args: []string{""}, expected: FallbackExecutableName},
	}

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.expected, GetExecutableName())
		})
	}
}
