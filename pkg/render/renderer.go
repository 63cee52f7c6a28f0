// Package render sequences asynchronous diagram renders so the
// displayed artifact always corresponds to the most recently requested
// definition, regardless of the order in which engine calls finish.
// In-flight renders are never cancelled; staleness is resolved purely
// by epoch comparison at application time.
package render

import "context"

// Engine turns a diagram definition into a displayable artifact.
// Implemented by mermaid.Engine.
type Engine interface {
	Render(ctx context.Context, definition string) (string, error)
}

// Outcome is one completed render, tagged with the epoch of the
// request that produced it.
type Outcome struct {
	Epoch    uint64
	Artifact string
	Fallback bool // artifact is the literal definition of a failed render
}

// Request is one issued render. Run may execute on any goroutine; it
// touches no renderer state.
type Request struct {
	Epoch      uint64
	Definition string
	engine     Engine
}

// Run invokes the engine. A failed render never escapes as an error:
// the outcome carries the literal definition text as fallback content,
// so the view always shows evidence of the latest request.
func (r Request) Run(ctx context.Context) Outcome {
	artifact, err := r.engine.Render(ctx, r.Definition)
	if err != nil {
		return Outcome{Epoch: r.Epoch, Artifact: r.Definition, Fallback: true}
	}
	return Outcome{Epoch: r.Epoch, Artifact: artifact}
}

// Renderer owns the epoch counter and the currently applied outcome.
// Request and Apply must be called from the goroutine that owns the
// renderer — in the TUI that is the Bubble Tea update loop.
type Renderer struct {
	engine     Engine
	lastEpoch  uint64
	applied    uint64
	current    Outcome
	hasCurrent bool
}

// New creates a renderer backed by engine.
func New(engine Engine) *Renderer {
	return &Renderer{engine: engine}
}

// Request assigns the next epoch. This happens synchronously, before
// any asynchronous work, so epoch order matches call order even when
// renders are requested back to back.
func (r *Renderer) Request(definition string) Request {
	r.lastEpoch++
	return Request{Epoch: r.lastEpoch, Definition: definition, engine: r.engine}
}

// Apply installs an outcome unless one from a newer request has
// already been applied; stale outcomes are discarded unconditionally.
// Reports whether the outcome became current.
func (r *Renderer) Apply(o Outcome) bool {
	if o.Epoch < r.applied {
		return false
	}
	r.applied = o.Epoch
	r.current = o
	r.hasCurrent = true
	return true
}

// Current returns the applied outcome; ok is false before the first
// Apply (the empty-initial state).
func (r *Renderer) Current() (Outcome, bool) {
	return r.current, r.hasCurrent
}

// Render is the synchronous path for one-shot callers: request, run,
// apply in order on the calling goroutine.
func (r *Renderer) Render(ctx context.Context, definition string) Outcome {
	req := r.Request(definition)
	o := req.Run(ctx)
	r.Apply(o)
	return o
}
