package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ormasoftchile/taskview/pkg/backend"
	"github.com/ormasoftchile/taskview/pkg/mermaid"
	"github.com/ormasoftchile/taskview/pkg/render"
	"github.com/ormasoftchile/taskview/pkg/session"
)

// Handlers implements the taskview MCP tools.
type Handlers struct {
	exec session.Executor
}

// HandleRun implements the taskview/run MCP tool. Each call creates a
// fresh session, so one misbehaving agent call cannot wedge the next.
func (h *Handlers) HandleRun(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	task, _ := args["task"].(string)

	s := session.New(h.exec)
	att, ok := s.Begin(task)
	if !ok {
		return errorResult("task argument must be non-blank"), nil
	}

	s.Finish(att.Run(ctx))
	if s.State() == session.StateFailed {
		return errorResult(s.Reason()), nil
	}

	result := s.Result()
	response := map[string]any{
		"steps":   result.Steps,
		"diagram": result.Diagram,
	}
	data, _ := json.MarshalIndent(response, "", "  ")
	return textResult(string(data)), nil
}

// HandleRender implements the taskview/render MCP tool.
func (h *Handlers) HandleRender(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	definition, _ := args["definition"].(string)

	r := render.New(mermaid.Engine{})
	o := r.Render(ctx, definition)
	if o.Fallback {
		// Fallback is still a result — the caller asked for this exact
		// definition and gets the literal text back, flagged.
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(o.Artifact)},
			IsError: true,
		}, nil
	}
	return textResult(o.Artifact), nil
}

// HandleSchema implements the taskview/schema MCP tool.
func (h *Handlers) HandleSchema(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := backend.GenerateResponseSchema()
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return textResult(string(data)), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(msg),
		},
		IsError: true,
	}
}
