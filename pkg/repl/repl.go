// Package repl implements the plain prompt mode: submit tasks line by
// line and read results inline, without the full-screen TUI.
package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ormasoftchile/taskview/pkg/render"
	"github.com/ormasoftchile/taskview/pkg/session"
	"github.com/ormasoftchile/taskview/pkg/trace"
)

// REPL drives a session from an interactive prompt. Any line that is
// not a ':' command is submitted as a task instruction. The loop is
// serial, so the session's single-flight guard never triggers here —
// it still owns the lifecycle.
type REPL struct {
	session  *session.Session
	renderer *render.Renderer
	liveURL  string
	output   io.Writer
}

// New creates a REPL backed by exec and engine.
func New(exec session.Executor, engine render.Engine, liveURL string) *REPL {
	return &REPL{
		session:  session.New(exec),
		renderer: render.New(engine),
		liveURL:  liveURL,
		output:   os.Stdout,
	}
}

// Run starts the interactive prompt loop.
func (r *REPL) Run(ctx context.Context) error {
	commands := []string{":trace", ":diagram", ":url", ":help", ":quit"}
	completer := readline.NewPrefixCompleter()
	for _, cmd := range commands {
		completer.Children = append(completer.Children, readline.PcItem(cmd))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "taskview> ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(r.output, "taskview — type an instruction to run it, ':help' for commands.\n\n")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if r.handleLine(ctx, line) {
			return nil
		}
	}
}

// handleLine processes one input line. Reports whether the loop
// should exit.
func (r *REPL) handleLine(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false

	case line == ":quit":
		return true

	case line == ":help":
		fmt.Fprintln(r.output, "Commands:")
		fmt.Fprintln(r.output, "  <instruction>   submit a task to the executor")
		fmt.Fprintln(r.output, "  :trace          show the trace of the last run")
		fmt.Fprintln(r.output, "  :diagram        show the current diagram artifact")
		fmt.Fprintln(r.output, "  :url            show the live view URL")
		fmt.Fprintln(r.output, "  :quit           exit")

	case line == ":url":
		if r.liveURL == "" {
			fmt.Fprintln(r.output, "no live view configured")
		} else {
			fmt.Fprintln(r.output, r.liveURL)
		}

	case line == ":trace":
		if result := r.session.Result(); result != nil {
			fmt.Fprintln(r.output, trace.Render(result.Steps))
		} else {
			fmt.Fprintln(r.output, "no run yet")
		}

	case line == ":diagram":
		if o, ok := r.renderer.Current(); ok {
			r.printOutcome(o)
		} else {
			fmt.Fprintln(r.output, "no diagram yet")
		}

	case strings.HasPrefix(line, ":"):
		fmt.Fprintf(r.output, "unknown command %q — try :help\n", line)

	default:
		r.submit(ctx, line)
	}
	return false
}

// submit runs one task synchronously and prints trace and diagram.
func (r *REPL) submit(ctx context.Context, instruction string) {
	att, ok := r.session.Begin(instruction)
	if !ok {
		return
	}
	fmt.Fprintln(r.output, "running…")

	r.session.Finish(att.Run(ctx))
	if r.session.State() == session.StateFailed {
		fmt.Fprintf(r.output, "✗ %s\n", r.session.Reason())
		return
	}

	result := r.session.Result()
	fmt.Fprintln(r.output, trace.Render(result.Steps))
	fmt.Fprintln(r.output)
	r.printOutcome(r.renderer.Render(ctx, result.Diagram))
}

func (r *REPL) printOutcome(o render.Outcome) {
	if o.Fallback {
		fmt.Fprintln(r.output, "diagram failed to render — raw definition:")
	}
	fmt.Fprintln(r.output, o.Artifact)
}
