// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptRequest(name string, args map[string]string) mcp.GetPromptRequest {
	var req mcp.GetPromptRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func promptText(t *testing.T, msg mcp.PromptMessage) string {
	t.Helper()

	text, ok := msg.Content.(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", msg.Content)
	return text.Text
}

func TestCreatePrompts(t *testing.T) {
	prompts := createPrompts()
	require.Len(t, prompts, 3)

	names := make([]string, 0, len(prompts))
	for _, p := range prompts {
		names = append(names, p.Prompt.Name)
		assert.NotEmpty(t, p.Prompt.Description)
		assert.NotNil(t, p.Handler)
		require.NotEmpty(t, p.Prompt.Arguments)
		assert.True(t, p.Prompt.Arguments[0].Required, "%s: first argument is required", p.Prompt.Name)
	}
	assert.Equal(t, []string{"deployment-troubleshooting", "domain-setup", "env-audit"}, names)
}

func TestPromptHandlers(t *testing.T) {
	tests := []struct {
		name         string
		handler      func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
		args         map[string]string
		description  string
		wantContains []string
	}{
		{
			name:         "deployment troubleshooting",
			handler:      handleDeploymentTroubleshootingPrompt,
			args:         map[string]string{"deploymentId": "dpl_9", "limit": "50"},
			description:  "Deployment Troubleshooting",
			wantContains: []string{"Deployment `dpl_9`", "getDeploymentEvents", "limit 50"},
		},
		{
			name:         "domain setup",
			handler:      handleDomainSetupPrompt,
			args:         map[string]string{"idOrName": "web", "domain": "www.example.com"},
			description:  "Domain Setup",
			wantContains: []string{`{"name": "www.example.com"}`, "verifyProjectDomain", "idOrName `web`"},
		},
		{
			name:         "env audit defaults to production",
			handler:      handleEnvAuditPrompt,
			args:         map[string]string{"idOrName": "web"},
			description:  "Environment Variable Audit",
			wantContains: []string{"`production` target", "filterProjectEnvs"},
		},
		{
			name:         "env audit with target",
			handler:      handleEnvAuditPrompt,
			args:         map[string]string{"idOrName": "web", "target": "preview"},
			description:  "Environment Variable Audit",
			wantContains: []string{"`preview` target"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.handler(context.Background(), promptRequest("", tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.description, result.Description)

			require.Len(t, result.Messages, 3, "user, assistant, user")
			assert.Equal(t, mcp.RoleUser, result.Messages[0].Role)
			assert.Equal(t, mcp.RoleAssistant, result.Messages[1].Role)
			assert.Equal(t, mcp.RoleUser, result.Messages[2].Role)

			var all strings.Builder
			for _, msg := range result.Messages {
				text := promptText(t, msg)
				assert.NotContains(t, text, "###")
				all.WriteString(text)
				all.WriteString("\n")
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, all.String(), want)
			}
		})
	}
}

func TestDeploymentPromptWithoutLimit(t *testing.T) {
	result, err := handleDeploymentTroubleshootingPrompt(context.Background(),
		promptRequest("", map[string]string{"deploymentId": "dpl_9"}))
	require.NoError(t, err)
	assert.NotContains(t, promptText(t, result.Messages[1]), " and limit")
}

func TestPromptHandlersRequireArguments(t *testing.T) {
	tests := []struct {
		name    string
		handler func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
		args    map[string]string
		missing string
	}{
		{"deployment id", handleDeploymentTroubleshootingPrompt, nil, "deploymentId"},
		{"blank deployment id", handleDeploymentTroubleshootingPrompt, map[string]string{"deploymentId": "  "}, "deploymentId"},
		{"project for domain", handleDomainSetupPrompt, map[string]string{"domain": "example.com"}, "idOrName"},
		{"domain", handleDomainSetupPrompt, map[string]string{"idOrName": "web"}, "domain"},
		{"project for env", handleEnvAuditPrompt, map[string]string{"target": "preview"}, "idOrName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.handler(context.Background(), promptRequest("", tt.args))
			assert.ErrorContains(t, err, `missing required argument "`+tt.missing+`"`)
		})
	}
}

func TestParsePromptTemplate(t *testing.T) {
	embed := fakeEmbed{files: map[string]string{
		"roles.md":   "# Title\n\nintro without role\n\n### User:\nfirst\nsecond\n\n## Section\n### Assistant:\nreply {{.Project}}\n",
		"broken.md":  "{{.Project",
		"missing.md": "{{.Nope}}",
	}}

	messages, err := parsePromptTemplate(embed, "roles", promptTemplateData{Project: "web"})
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, mcp.RoleUser, messages[0].Role)
	assert.Equal(t, "first\nsecond", promptText(t, messages[0]))
	assert.Equal(t, mcp.RoleAssistant, messages[1].Role)
	assert.Equal(t, "reply web", promptText(t, messages[1]))

	_, err = parsePromptTemplate(embed, "absent", promptTemplateData{})
	assert.ErrorContains(t, err, "failed to read template absent")

	_, err = parsePromptTemplate(embed, "broken", promptTemplateData{})
	assert.ErrorContains(t, err, "failed to parse template broken")

	_, err = parsePromptTemplate(embed, "missing", promptTemplateData{})
	assert.ErrorContains(t, err, "failed to execute template missing")
}

func TestPromptsOverMCP(t *testing.T) {
	srv := mcptest.NewUnstartedServer(t)
	srv.AddPrompts(createPrompts()...)
	require.NoError(t, srv.Start(context.Background()))
	defer srv.Close()

	list, err := srv.Client().ListPrompts(context.Background(), mcp.ListPromptsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Prompts, 3)

	result, err := srv.Client().GetPrompt(context.Background(),
		promptRequest("domain-setup", map[string]string{"idOrName": "web", "domain": "example.com"}))
	require.NoError(t, err)
	require.Len(t, result.Messages, 3)
	assert.Contains(t, promptText(t, result.Messages[1]), "addProjectDomain")

	_, err = srv.Client().GetPrompt(context.Background(), promptRequest("domain-setup", nil))
	assert.Error(t, err)
}
