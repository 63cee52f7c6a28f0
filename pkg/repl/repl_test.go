package repl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ormasoftchile/taskview/pkg/mermaid"
	"github.com/ormasoftchile/taskview/pkg/trace"
)

type cannedExecutor struct {
	result *trace.Result
	err    error
}

func (c *cannedExecutor) RunTask(ctx context.Context, instruction string) (*trace.Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.result, nil
}

func newTestREPL(exec *cannedExecutor) (*REPL, *bytes.Buffer) {
	r := New(exec, mermaid.Engine{}, "http://host:6080")
	var buf bytes.Buffer
	r.output = &buf
	return r, &buf
}

func TestHandleLine_SubmitPrintsTraceAndDiagram(t *testing.T) {
	r, buf := newTestREPL(&cannedExecutor{result: &trace.Result{
		Steps:   []trace.Step{{Text: "Clicked login", Kind: trace.KindContent}},
		Diagram: "graph TD;A[Start]-->B[End];",
	}})

	if quit := r.handleLine(context.Background(), "log into the site"); quit {
		t.Fatal("submit should not quit")
	}
	out := buf.String()
	if !strings.Contains(out, "Clicked login") {
		t.Errorf("trace missing:\n%s", out)
	}
	if !strings.Contains(out, "Start") {
		t.Errorf("diagram missing:\n%s", out)
	}
}

func TestHandleLine_FailurePrintsReason(t *testing.T) {
	exec := &cannedExecutor{err: errors.New("backend returned HTTP 500")}
	r, buf := newTestREPL(exec)

	r.handleLine(context.Background(), "doomed")
	if !strings.Contains(buf.String(), "backend returned HTTP 500") {
		t.Errorf("reason missing:\n%s", buf.String())
	}

	// Session recovered — a follow-up run works.
	exec.err = nil
	exec.result = &trace.Result{Steps: []trace.Step{{Text: "fine now", Kind: trace.KindContent}}}
	buf.Reset()
	r.handleLine(context.Background(), "retry")
	if !strings.Contains(buf.String(), "fine now") {
		t.Errorf("retry after failure did not run:\n%s", buf.String())
	}
}

func TestHandleLine_Commands(t *testing.T) {
	r, buf := newTestREPL(&cannedExecutor{result: &trace.Result{
		Steps:   []trace.Step{{Text: "step", Kind: trace.KindContent}},
		Diagram: "graph TD;A;",
	}})
	ctx := context.Background()

	if !r.handleLine(ctx, ":quit") {
		t.Error(":quit should quit")
	}
	r.handleLine(ctx, ":url")
	if !strings.Contains(buf.String(), "http://host:6080") {
		t.Error(":url output missing")
	}

	buf.Reset()
	r.handleLine(ctx, ":trace")
	if !strings.Contains(buf.String(), "no run yet") {
		t.Error("expected 'no run yet' before first submit")
	}

	r.handleLine(ctx, "do something")
	buf.Reset()
	r.handleLine(ctx, ":trace")
	if !strings.Contains(buf.String(), "step") {
		t.Error(":trace should show last run")
	}

	buf.Reset()
	r.handleLine(ctx, ":bogus")
	if !strings.Contains(buf.String(), "unknown command") {
		t.Error("unknown command not reported")
	}
}

func TestHandleLine_BlankLineIgnored(t *testing.T) {
	r, buf := newTestREPL(&cannedExecutor{})
	r.handleLine(context.Background(), "   ")
	if buf.Len() != 0 {
		t.Errorf("blank line produced output: %q", buf.String())
	}
}
