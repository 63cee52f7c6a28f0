package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ormasoftchile/taskview/pkg/trace"
)

type fakeExecutor struct {
	result *trace.Result
	err    error
}

func (f *fakeExecutor) RunTask(ctx context.Context, instruction string) (*trace.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestHandleRun_BlankTaskRejected(t *testing.T) {
	h := &Handlers{exec: &fakeExecutor{}}

	result, err := h.HandleRun(context.Background(), callRequest(map[string]any{"task": "  "}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error for blank task")
	}
}

func TestHandleRun_ReturnsStepsAndDiagram(t *testing.T) {
	h := &Handlers{exec: &fakeExecutor{result: &trace.Result{
		Steps:   []trace.Step{{Text: "Opened page", Kind: trace.KindContent}},
		Diagram: "graph TD;A;",
	}}}

	result, err := h.HandleRun(context.Background(), callRequest(map[string]any{"task": "go"}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}
	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "Opened page") || !strings.Contains(text, "graph TD;A;") {
		t.Errorf("response = %s", text)
	}
}

func TestHandleRun_ExecutorFailureSurfaced(t *testing.T) {
	h := &Handlers{exec: &fakeExecutor{err: errors.New("backend returned HTTP 500")}}

	result, err := h.HandleRun(context.Background(), callRequest(map[string]any{"task": "go"}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("expected error result")
	}
}

func TestHandleRender_ValidDefinition(t *testing.T) {
	h := &Handlers{}

	result, err := h.HandleRender(context.Background(), callRequest(map[string]any{"definition": "graph TD;A[Go]-->B[Done];"}))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}
	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "Go") || !strings.Contains(text, "Done") {
		t.Errorf("artifact = %s", text)
	}
}

func TestHandleRender_FallbackFlagged(t *testing.T) {
	h := &Handlers{}

	result, err := h.HandleRender(context.Background(), callRequest(map[string]any{"definition": "not a diagram"}))
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsError {
		t.Error("fallback should be flagged as error")
	}
	text := result.Content[0].(mcp.TextContent).Text
	if text != "not a diagram" {
		t.Errorf("fallback text = %q", text)
	}
}

func TestHandleSchema_EmitsSchema(t *testing.T) {
	h := &Handlers{}

	result, err := h.HandleSchema(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}
	text := result.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, "mermaid_diagram") {
		t.Error("schema should mention mermaid_diagram")
	}
}
