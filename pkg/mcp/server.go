// Package mcp exposes the task client as MCP tools, so AI agents can
// submit browser tasks and render diagrams over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ormasoftchile/taskview/pkg/session"
)

// NewServer creates a new MCP server with taskview tools registered.
// exec is the backend the run tool submits to.
func NewServer(version string, exec session.Executor) *server.MCPServer {
	s := server.NewMCPServer(
		"taskview",
		version,
		server.WithToolCapabilities(true),
	)

	h := &Handlers{exec: exec}

	s.AddTool(
		mcp.NewTool("taskview/run",
			mcp.WithDescription("Submit a browser task to the executor and return its trace and diagram"),
			mcp.WithString("task", mcp.Required(), mcp.Description("Natural-language instruction for the browser agent")),
		),
		h.HandleRun,
	)

	s.AddTool(
		mcp.NewTool("taskview/render",
			mcp.WithDescription("Render a Mermaid flowchart definition as an ASCII artifact"),
			mcp.WithString("definition", mcp.Required(), mcp.Description("Mermaid flowchart definition text")),
		),
		h.HandleRender,
	)

	s.AddTool(
		mcp.NewTool("taskview/schema",
			mcp.WithDescription("Export the JSON Schema of the executor's run-task response"),
		),
		h.HandleSchema,
	)

	return s
}
