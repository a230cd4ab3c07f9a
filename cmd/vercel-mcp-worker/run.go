// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/vercel-mcp/src/logger"
	"github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server"
	"github.com/H0llyW00dzZ/vercel-mcp/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/vercel-mcp/src/worker"
	"github.com/mark3labs/mcp-go/server"
)

const (
	mcpPath    = "/mcp"
	rpcPath    = "/rpc"
	healthPath = "/healthz"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv(mcpserver.EnvConfigFile)); err != nil {
		fmt.Fprintf(os.Stderr, "Worker error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the configuration, binds the listen address and serves until ctx is done.
func run(ctx context.Context, configFile string) error {
	config, err := mcpserver.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewMCPLogger(os.Stderr, config.Log.Silent)
	handler, err := newHandler(config, log)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", config.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.Server.Addr, err)
	}

	return serve(ctx, ln, handler, log)
}

// newHandler mounts the streamable MCP endpoint, the JSON-RPC proxy and the
// health probe onto one mux. Every route shares the same upstream client and
// credential context.
func newHandler(config *mcpserver.Config, log logger.Logger) (http.Handler, error) {
	creds := config.Credentials()
	if creds.Token == "" {
		return nil, mcpserver.ErrMissingCredentials
	}

	api := mcpserver.NewVercelClient(config, log)
	s, err := mcpserver.NewServerBuilder().
		WithConfig(config).
		WithEmbed(templates.MagicEmbed).
		WithVersion(version).
		WithCredentials(creds).
		WithAPI(api).
		WithLogger(log).
		WithDefaultTools().
		WithDefaultPrompts().
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build MCP server: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(mcpPath, server.NewStreamableHTTPServer(s,
		server.WithEndpointPath(mcpPath),
		server.WithStateLess(true),
	))
	mux.Handle(rpcPath, worker.NewProxy(worker.New(api, creds), log))
	mux.HandleFunc("GET "+healthPath, handleHealth)

	return mux, nil
}

// handleHealth reports liveness and a runtime snapshot. ?detailed=true adds allocation counters.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"name":    mcpserver.ServerName,
		"version": version,
		"methods": len(worker.Methods()),
		"runtime": mcpserver.CollectResourceUsage(r.URL.Query().Get("detailed") == "true"),
	})
}

// serve runs handler on ln until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Printf("Vercel MCP worker %s listening on %s", version, ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Received termination signal. Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
