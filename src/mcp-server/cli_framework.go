// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/template"

	"github.com/H0llyW00dzZ/vercel-mcp/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/mark3labs/mcp-go/server"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/spf13/cobra"
)

// APIKeyArg is the positional KEY=value argument carrying the bearer token.
const APIKeyArg = "VERCEL_API_KEY"

// cliHelpData holds the data used to populate the CLI help template.
//
// Fields:
//   - ExeName: The name of the executable binary for command examples
//   - APIKeyArg: The positional argument name carrying the token
//   - InstructionsFlagName: The formatted instructions flag name (e.g., "--instructions")
//   - ConfigFlagName: The formatted config flag name (e.g., "--config")
//   - HelpFlagName: The formatted help flag name (e.g., "--help")
type cliHelpData struct {
	ExeName              string
	APIKeyArg            string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework integrates Cobra CLI with MCP server capabilities.
//
// Key features:
//   - Dynamic executable naming based on actual binary path (not hardcoded)
//   - [Gopls-style] --instructions flag for displaying Vercel workflows
//   - Configuration file support via --config flag or MCP_VERCEL_CONFIG_FILE environment variable
//   - Token from the VERCEL_API_KEY=<key> positional argument, falling back to configuration
//   - A "tools" subcommand listing the tool catalog as a markdown table
//   - Graceful shutdown handling with signal interception
//
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile    string
	embed         templates.EmbedFS
	version       string
	api           VercelAPI
	log           logger.Logger
	tools         []ToolDefinition
	resources     []server.ServerResource
	prompts       []server.ServerPrompt
	instructions  string
	populateCache bool
}

// NewCLIFramework creates a new CLI framework instance with MCP server integration.
//
// Parameters:
//   - configFile: Path to the MCP server configuration file.
//     Can be overridden via --config flag or MCP_VERCEL_CONFIG_FILE environment variable.
//   - deps: Server dependencies. Credentials and Config are resolved at run time
//     from the command line and the configuration file.
//
// Returns:
//   - *CLIFramework: Initialized CLI framework ready for building commands.
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	return &CLIFramework{
		configFile:    configFile,
		embed:         deps.Embed,
		version:       deps.Version,
		api:           deps.API,
		log:           deps.Logger,
		tools:         deps.Tools,
		resources:     deps.Resources,
		prompts:       deps.Prompts,
		instructions:  deps.Instructions,
		populateCache: deps.PopulateCache,
	}
}

// BuildRootCommand creates the root Cobra command with integrated MCP server capabilities.
//
// Command behavior:
//   - With --instructions: Displays formatted workflows and exits
//   - With "tools": Prints the tool catalog
//   - Otherwise: Reads KEY=value arguments and starts the stdio MCP server
//
// Returns:
//   - *cobra.Command: Root command with MCP server integration.
//
// Example usage:
//
//	framework := NewCLIFramework("", deps)
//	if err := framework.BuildRootCommand().Execute(); err != nil {
//	    os.Exit(1)
//	}
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:           exeName + " " + APIKeyArg + "=<YOUR_API_KEY>",
		Short:         "Vercel REST API tools served over the Model Context Protocol",
		Version:       cf.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Cobra normally adds this during Execute; the help text needs the name earlier.
	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)
	rootCmd.PersistentFlags().Bool("instructions", false, "print usage workflows for Vercel operations")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to MCP server configuration file")

	instructionsFlagName, configFlagName, helpFlagName := extractFlagNames(rootCmd)

	if cf.embed == nil {
		panic("CLIFramework embed filesystem not initialized")
	}

	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName)
	if err != nil {
		panic(fmt.Sprintf("failed to process CLI help template: %v", err))
	}

	rootCmd.Long = longDesc
	rootCmd.Example = examples
	rootCmd.RunE = cf.createRootCommandRunE(exeName)
	rootCmd.AddCommand(cf.buildToolsCommand())

	return rootCmd
}

// loadAndExecuteCLIHelpTemplate renders cli_help.md and splits it into the
// Long description and the Examples section.
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName string) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile("cli_help.md")
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	data := cliHelpData{
		ExeName:              exeName,
		APIKeyArg:            APIKeyArg,
		InstructionsFlagName: instructionsFlagName,
		ConfigFlagName:       configFlagName,
		HelpFlagName:         helpFlagName,
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return cf.parseTemplateResult(result.String())
}

// parseTemplateResult splits the rendered help at the "## Examples" line.
//
// Returns:
//   - longDesc: Everything before the marker line
//   - examples: Everything after the marker line
//   - err: If the marker is missing
func (cf *CLIFramework) parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	examplesMarker := "## Examples"
	markerIndex := strings.Index(templateResult, examplesMarker)
	if markerIndex == -1 {
		return "", "", fmt.Errorf("CLI help template has invalid format - missing '## Examples' section")
	}

	lineStart := strings.LastIndex(templateResult[:markerIndex], "\n")
	if lineStart == -1 {
		lineStart = 0
	} else {
		lineStart++
	}

	lineEnd := strings.Index(templateResult[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(templateResult)
	} else {
		lineEnd += markerIndex
	}

	longDesc = strings.TrimSpace(templateResult[:lineStart])
	examples = strings.TrimSpace(templateResult[lineEnd:])

	return longDesc, examples, nil
}

// extractFlagNames returns the "--" prefixed names of the instructions, config and help flags.
// Defaults are returned for flags that cannot be found.
func extractFlagNames(rootCmd *cobra.Command) (instructionsFlagName, configFlagName, helpFlagName string) {
	instructionsFlagName = "--instructions"
	if f := rootCmd.PersistentFlags().Lookup("instructions"); f != nil {
		instructionsFlagName = "--" + f.Name
	}

	configFlagName = "--config"
	if f := rootCmd.PersistentFlags().Lookup("config"); f != nil {
		configFlagName = "--" + f.Name
	}

	helpFlagName = "--help"
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		helpFlagName = "--" + f.Name
	}

	return instructionsFlagName, configFlagName, helpFlagName
}

// parseKeyValueArgs splits KEY=value positional arguments.
// Only the first "=" separates key and value, so values may contain "=".
func parseKeyValueArgs(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("unexpected argument %q, expected KEY=value", arg)
		}
		values[key] = value
	}
	return values, nil
}

// createRootCommandRunE creates the RunE function for the root command.
//
// The flag is read inside RunE so the parsed value is seen, not the value at build time.
// A missing token prints the usage line on stderr and returns [ErrMissingCredentials].
func (cf *CLIFramework) createRootCommandRunE(exeName string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if show, _ := cmd.Flags().GetBool("instructions"); show {
			return cf.printInstructions(cmd.OutOrStdout())
		}

		values, err := parseKeyValueArgs(args)
		if err != nil {
			return err
		}

		config, err := LoadConfig(cf.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		creds := config.Credentials()
		if token := values[APIKeyArg]; token != "" {
			creds.Token = token
		}

		if creds.Token == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error: Missing Vercel API key")
			fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s %s=<YOUR_API_KEY>\n", exeName, APIKeyArg)
			return ErrMissingCredentials
		}

		return cf.startMCPServer(cmd.Context(), config, creds, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
}

// startMCPServer builds the server and serves it over stdio until the input
// closes, the context ends or SIGINT/SIGTERM arrives.
//
// Returns:
//   - nil: When the input stream ends or a signal stops the server
//   - error: Server building or runtime errors
func (cf *CLIFramework) startMCPServer(ctx context.Context, config *Config, creds vercel.Credentials, in io.Reader, out, errOut io.Writer) error {
	l := logger.NewCLILogger()
	l.SetOutput(errOut)

	mcpLog := cf.log
	if mcpLog == nil {
		mcpLog = logger.NewMCPLogger(errOut, config.Log.Silent)
	}

	builder := NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.embed).
		WithVersion(cf.version).
		WithCredentials(creds).
		WithLogger(mcpLog).
		WithTools(cf.tools...).
		WithResources(cf.resources...).
		WithPrompts(cf.prompts...).
		WithInstructions(cf.instructions)
	if cf.api != nil {
		builder = builder.WithAPI(cf.api)
	}
	if cf.populateCache {
		builder = builder.WithPopulate()
	}

	mcpServer, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			// Clear the line (including any ^C) before the shutdown message
			l.Printf("\rReceived signal %s, initiating graceful shutdown...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	l.Printf("Vercel MCP server %s started.", cf.version)

	stdioServer := server.NewStdioServer(mcpServer)
	if err = stdioServer.Listen(ctx, in, out); errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// printInstructions writes the rendered instructions.
// They are rendered from the embedded template when none were preset.
func (cf *CLIFramework) printInstructions(w io.Writer) error {
	instructions := cf.instructions
	if instructions == "" {
		rendered, err := loadInstructions(cf.embed, cf.tools)
		if err != nil {
			return err
		}
		instructions = rendered
	}

	_, err := fmt.Fprint(w, instructions)
	return err
}

// buildToolsCommand creates the "tools" subcommand printing the catalog as a markdown table.
func (cf *CLIFramework) buildToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the Vercel tools exposed by the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderToolsTable(cmd.OutOrStdout(), cf.tools)
		},
	}
}

// renderToolsTable writes one row per tool: name, description and whether it only reads.
func renderToolsTable(w io.Writer, tools []ToolDefinition) error {
	table := tablewriter.NewTable(w, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Tool", "Description", "Read-only")

	rows := make([][]string, 0, len(tools))
	for _, def := range tools {
		readOnly := def.Tool.Annotations.ReadOnlyHint != nil && *def.Tool.Annotations.ReadOnlyHint
		rows = append(rows, []string{def.Tool.Name, def.Tool.Description, fmt.Sprintf("%t", readOnly)})
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build tools table: %w", err)
	}

	return table.Render()
}
