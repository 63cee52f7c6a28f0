// Package main provides taskview-mcp, an MCP server exposing the task
// client over stdio so AI agents can submit browser tasks and render
// diagrams.
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ormasoftchile/taskview/pkg/backend"
	"github.com/ormasoftchile/taskview/pkg/mcp"
)

var version = "dev"

func main() {
	cfg, err := backend.LoadConfig(os.Getenv("TASKVIEW_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "taskview-mcp: %v\n", err)
		os.Exit(1)
	}

	s := mcp.NewServer(version, backend.NewClient(cfg))
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "taskview-mcp: %v\n", err)
		os.Exit(1)
	}
}
