// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// defaultEnvTarget is the target audited when the env-audit prompt gets none.
const defaultEnvTarget = "production"

// promptTemplateData holds the data used to populate prompt templates.
type promptTemplateData struct {
	DeploymentID string
	Limit        string
	Project      string
	Domain       string
	Target       string
}

// createPrompts creates and returns all MCP prompt definitions with their handlers.
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("deployment-troubleshooting",
				mcp.WithPromptDescription("Find out why a deployment failed or misbehaves"),
				mcp.WithArgument("deploymentId",
					mcp.ArgumentDescription("The ID or URL of the deployment"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("limit",
					mcp.ArgumentDescription("Maximum number of build events to read"),
				),
			),
			Handler: handleDeploymentTroubleshootingPrompt,
		},
		{
			Prompt: mcp.NewPrompt("domain-setup",
				mcp.WithPromptDescription("Attach a domain to a project and verify its DNS"),
				mcp.WithArgument("idOrName",
					mcp.ArgumentDescription("The ID or name of the project"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("domain",
					mcp.ArgumentDescription("The domain to attach, e.g. www.example.com"),
					mcp.RequiredArgument(),
				),
			),
			Handler: handleDomainSetupPrompt,
		},
		{
			Prompt: mcp.NewPrompt("env-audit",
				mcp.WithPromptDescription("Review the environment variables of a project"),
				mcp.WithArgument("idOrName",
					mcp.ArgumentDescription("The ID or name of the project"),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("target",
					mcp.ArgumentDescription("Environment target to audit (default: production)"),
				),
			),
			Handler: handleEnvAuditPrompt,
		},
	}
}

// requiredPromptArgument returns the named argument or an error when it is blank.
func requiredPromptArgument(request mcp.GetPromptRequest, name string) (string, error) {
	value := strings.TrimSpace(request.Params.Arguments[name])
	if value == "" {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	return value, nil
}

// parsePromptTemplate parses a prompt template file and converts it to MCP messages.
//
// The executed template is split on "### User:" and "### Assistant:" markers.
// Other markdown headers and blank lines are dropped.
//
// Parameters:
//   - templateName: Name of the template file (without .md extension)
//   - data: Template data to populate placeholders
//
// Returns:
//   - []mcp.PromptMessage: Parsed MCP messages
//   - error: Any error during template execution or parsing
func parsePromptTemplate(embed templates.EmbedFS, templateName string, data promptTemplateData) ([]mcp.PromptMessage, error) {
	templateContent, err := embed.ReadFile(templateName + ".md")
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	var (
		messages       []mcp.PromptMessage
		currentRole    mcp.Role
		currentContent strings.Builder
	)
	flush := func() {
		if currentContent.Len() > 0 {
			messages = append(messages, mcp.NewPromptMessage(
				currentRole,
				mcp.NewTextContent(strings.TrimSpace(currentContent.String())),
			))
			currentContent.Reset()
		}
	}

	for line := range strings.SplitSeq(buf.String(), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "### Assistant:"):
			flush()
			currentRole = mcp.RoleAssistant
			continue
		case strings.HasPrefix(line, "### User:"):
			flush()
			currentRole = mcp.RoleUser
			continue
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		}

		if currentRole != "" {
			if currentContent.Len() > 0 {
				currentContent.WriteString("\n")
			}
			currentContent.WriteString(line)
		}
	}
	flush()

	return messages, nil
}

// handleDeploymentTroubleshootingPrompt walks through a failing deployment:
// state, build events, output files and the previous good deployment.
//
// Expected arguments in request.Params.Arguments:
//   - deploymentId: The ID or URL of the deployment (required)
//   - limit: Maximum number of build events to read
func handleDeploymentTroubleshootingPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	deploymentID, err := requiredPromptArgument(request, "deploymentId")
	if err != nil {
		return nil, err
	}

	messages, err := parsePromptTemplate(templates.MagicEmbed, "deployment-troubleshooting-prompt", promptTemplateData{
		DeploymentID: deploymentID,
		Limit:        strings.TrimSpace(request.Params.Arguments["limit"]),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse deployment troubleshooting template: %w", err)
	}

	return mcp.NewGetPromptResult("Deployment Troubleshooting", messages), nil
}

// handleDomainSetupPrompt attaches a domain to a project and checks DNS until it verifies.
func handleDomainSetupPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	project, err := requiredPromptArgument(request, "idOrName")
	if err != nil {
		return nil, err
	}
	domain, err := requiredPromptArgument(request, "domain")
	if err != nil {
		return nil, err
	}

	messages, err := parsePromptTemplate(templates.MagicEmbed, "domain-setup-prompt", promptTemplateData{
		Project: project,
		Domain:  domain,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse domain setup template: %w", err)
	}

	return mcp.NewGetPromptResult("Domain Setup", messages), nil
}

func handleEnvAuditPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	project, err := requiredPromptArgument(request, "idOrName")
	if err != nil {
		return nil, err
	}
	target := strings.TrimSpace(request.Params.Arguments["target"])
	if target == "" {
		target = defaultEnvTarget
	}

	messages, err := parsePromptTemplate(templates.MagicEmbed, "env-audit-prompt", promptTemplateData{
		Project: project,
		Target:  target,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse env audit template: %w", err)
	}

	return mcp.NewGetPromptResult("Environment Variable Audit", messages), nil
}
