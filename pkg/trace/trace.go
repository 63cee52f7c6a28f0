// Package trace defines the ordered step-outcome trace produced by one
// task run, plus pure formatting of a trace for display.
package trace

import (
	"fmt"
	"strings"
)

// Kind classifies how the backend recorded a step outcome.
type Kind string

const (
	KindContent Kind = "content" // step carried extracted content
	KindError   Kind = "error"   // step carried only an error message
	KindPending Kind = "pending" // step carried neither — still processing
)

// Placeholder is the text shown for a step that carried neither content
// nor an error.
const Placeholder = "(processing)"

// Step is one outcome in a task's execution trace. Order is execution
// order; duplicates are allowed.
type Step struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
	Done bool   `json:"done,omitempty"`
}

// Result is the complete outcome of one task run: the trace and the
// Mermaid diagram definition that describes it. A Result is immutable
// after construction; a new run replaces it wholesale — trace and
// diagram are never updated independently.
type Result struct {
	Steps   []Step `json:"steps"`
	Diagram string `json:"diagram"`
}

// Render formats a trace as a numbered list. A pure function of its
// input: no state, no error conditions. An empty trace renders a
// neutral placeholder line.
func Render(steps []Step) string {
	if len(steps) == 0 {
		return "(no steps recorded)"
	}

	var b strings.Builder
	for i, s := range steps {
		marker := " "
		switch {
		case s.Kind == KindError:
			marker = "✗"
		case s.Done:
			marker = "✓"
		}
		fmt.Fprintf(&b, "%3d. %s %s\n", i+1, marker, s.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}
