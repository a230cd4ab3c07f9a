// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/H0llyW00dzZ/vercel-mcp/src/vercel"
	"github.com/H0llyW00dzZ/vercel-mcp/src/version"
	"gopkg.in/yaml.v3"
)

// Environment variables read by [LoadConfig].
const (
	// EnvConfigFile names the configuration file when no path is given.
	EnvConfigFile = "MCP_VERCEL_CONFIG_FILE"
	// EnvAPIToken supplies the bearer token when the file has none.
	EnvAPIToken = "VERCEL_API_TOKEN"
	// EnvTeamID supplies the default team ID when the file has none.
	EnvTeamID = "VERCEL_TEAM_ID"
	// EnvTeamSlug supplies the default team slug when the file has none.
	EnvTeamSlug = "VERCEL_TEAM_SLUG"
)

const (
	defaultTimeoutSeconds = 60
	defaultAddr           = ":8787"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
//
// The configuration can be loaded from a JSON or YAML file specified by the MCP_VERCEL_CONFIG_FILE
// environment variable, with defaults applied for any missing values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Vercel: Upstream API settings and default credential context
	Vercel struct {
		// Token: Bearer token (can also be set via VERCEL_API_TOKEN env var)
		Token string `json:"token,omitempty" yaml:"token,omitempty"`
		// TeamID: Default team scope for every call
		TeamID string `json:"teamId,omitempty" yaml:"teamId,omitempty"`
		// Slug: Default team slug for every call
		Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`
		// BaseURL: API endpoint (defaults to https://api.vercel.com)
		BaseURL string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
		// Timeout: Per-request timeout in seconds, 0 disables it
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	} `json:"vercel" yaml:"vercel"`

	// Server: Settings for the HTTP worker entrypoint
	Server struct {
		// Addr: Listen address for the worker
		Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
	} `json:"server" yaml:"server"`

	// Log: Structured logger settings
	Log struct {
		// Silent: Suppress all structured log output
		Silent bool `json:"silent,omitempty" yaml:"silent,omitempty"`
	} `json:"log" yaml:"log"`
}

// Credentials returns the default credential context described by the configuration.
func (c *Config) Credentials() vercel.Credentials {
	return vercel.Credentials{
		Token:  c.Vercel.Token,
		TeamID: c.Vercel.TeamID,
		Slug:   c.Vercel.Slug,
	}
}

// detectConfigFormat determines the configuration file format based on file extension.
//
// The function uses case-insensitive extension matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads MCP server configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_VERCEL_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. VERCEL_API_TOKEN, VERCEL_TEAM_ID and VERCEL_TEAM_SLUG fill fields the file left empty
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Vercel.BaseURL = vercel.DefaultBaseURL
	config.Vercel.Timeout = defaultTimeoutSeconds
	config.Server.Addr = defaultAddr

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}

		if config.Vercel.Timeout < 0 {
			config.Vercel.Timeout = defaultTimeoutSeconds
		}
		if config.Vercel.BaseURL == "" {
			config.Vercel.BaseURL = vercel.DefaultBaseURL
		}
		if config.Server.Addr == "" {
			config.Server.Addr = defaultAddr
		}
	}

	if config.Vercel.Token == "" {
		config.Vercel.Token = os.Getenv(EnvAPIToken)
	}
	if config.Vercel.TeamID == "" {
		config.Vercel.TeamID = os.Getenv(EnvTeamID)
	}
	if config.Vercel.Slug == "" {
		config.Vercel.Slug = os.Getenv(EnvTeamSlug)
	}

	return config, nil
}

// NewVercelClient builds the upstream client described by config.
// A nil config yields a client with package defaults.
func NewVercelClient(config *Config, l logger.Logger) *vercel.Client {
	opts := []vercel.Option{
		vercel.WithUserAgent(fmt.Sprintf("%s/%s", version.Name, GetVersion())),
	}
	if config != nil {
		opts = append(opts,
			vercel.WithBaseURL(config.Vercel.BaseURL),
			vercel.WithTimeout(time.Duration(config.Vercel.Timeout)*time.Second),
		)
	}
	if l != nil {
		opts = append(opts, vercel.WithLogger(l))
	}
	return vercel.New(opts...)
}
