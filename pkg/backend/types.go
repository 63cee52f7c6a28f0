package backend

import "github.com/ormasoftchile/taskview/pkg/trace"

// RunTaskRequest is the JSON body of POST /api/run-task.
type RunTaskRequest struct {
	Task string `json:"task"`
}

// StepEntry is one element of the backend's steps array. The backend
// mixes two shapes without a discriminant field: agent steps carry
// extracted_content, failed steps carry error, and a step that is still
// being recorded may carry neither. Fields are pointers because the
// backend serializes absent values as JSON null.
type StepEntry struct {
	ExtractedContent *string `json:"extracted_content,omitempty" jsonschema:"oneof_type=string;null"`
	Error            *string `json:"error,omitempty" jsonschema:"oneof_type=string;null"`
	IsDone           bool    `json:"is_done,omitempty" jsonschema:"oneof_type=boolean;null"`
}

// RunTaskResponse is the JSON body of a successful run-task call.
type RunTaskResponse struct {
	Steps          []StepEntry `json:"steps"`
	MermaidDiagram string      `json:"mermaid_diagram"`
}

// outcome maps one step entry to a trace step. Fallback priority is
// fixed by the backend contract: extracted_content, then error, then
// the processing placeholder. Null and empty string both count as
// absent, matching how the original frontend read these fields.
func (e StepEntry) outcome() trace.Step {
	switch {
	case e.ExtractedContent != nil && *e.ExtractedContent != "":
		return trace.Step{Text: *e.ExtractedContent, Kind: trace.KindContent, Done: e.IsDone}
	case e.Error != nil && *e.Error != "":
		return trace.Step{Text: *e.Error, Kind: trace.KindError, Done: e.IsDone}
	default:
		return trace.Step{Text: trace.Placeholder, Kind: trace.KindPending, Done: e.IsDone}
	}
}

// result converts the wire response into an immutable task result.
func (r RunTaskResponse) result() *trace.Result {
	steps := make([]trace.Step, 0, len(r.Steps))
	for _, e := range r.Steps {
		steps = append(steps, e.outcome())
	}
	return &trace.Result{Steps: steps, Diagram: r.MermaidDiagram}
}
