// Package session owns the lifecycle of the single in-flight task: one
// submission at a time, one terminal transition per response, and
// wholesale replacement of the previous result.
package session

import (
	"context"
	"strings"

	"github.com/ormasoftchile/taskview/pkg/trace"
)

// Executor submits one instruction to the remote task executor and
// blocks until the run completes. Implemented by backend.Client.
type Executor interface {
	RunTask(ctx context.Context, instruction string) (*trace.Result, error)
}

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session serializes the task lifecycle. Mutating methods (Begin,
// Finish) must be called from the single goroutine that owns the
// session — in the TUI that is the Bubble Tea update loop; reads
// return snapshots. The session itself enforces single-flight: even a
// caller that bypasses a disabled control cannot start two concurrent
// requests.
type Session struct {
	exec   Executor
	state  State
	reason string
	result *trace.Result
}

// New creates an idle session backed by exec.
func New(exec Executor) *Session {
	return &Session{exec: exec}
}

// Begin accepts one submission. A blank instruction (after trimming)
// is a no-op: no state transition, no outbound request. While a task
// is in flight the call is rejected, not queued. From Failed, Begin
// clears the reason and proceeds exactly as from Idle.
func (s *Session) Begin(instruction string) (*Attempt, bool) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil, false
	}
	if s.state == StateSubmitting {
		return nil, false
	}
	s.state = StateSubmitting
	s.reason = ""
	return &Attempt{instruction: instruction, exec: s.exec}, true
}

// Finish applies the terminal transition for one completion. Exactly
// one transition happens per completion: Submitting→Idle with the
// result replaced wholesale (trace and diagram together, never one
// without the other), or Submitting→Failed carrying the reason.
func (s *Session) Finish(c Completion) {
	if s.state != StateSubmitting {
		return
	}
	if c.Err != nil {
		s.state = StateFailed
		s.reason = c.Err.Error()
		return
	}
	s.state = StateIdle
	s.result = c.Result
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Reason returns the failure reason, empty unless state is Failed.
func (s *Session) Reason() string { return s.reason }

// Result returns the most recent task result, nil before the first
// successful run. The result is immutable; callers must treat it as
// read-only.
func (s *Session) Result() *trace.Result { return s.result }

// Attempt is one accepted submission. Run may be called off the
// owning goroutine — it touches no session state.
type Attempt struct {
	instruction string
	exec        Executor
}

// Instruction returns the trimmed instruction this attempt carries.
func (a *Attempt) Instruction() string { return a.instruction }

// Run performs the single outbound request and converts any failure
// into a Completion. Nothing propagates out of the call uncaught.
func (a *Attempt) Run(ctx context.Context) Completion {
	result, err := a.exec.RunTask(ctx, a.instruction)
	if err != nil {
		return Completion{Err: err}
	}
	return Completion{Result: result}
}

// Completion is the terminal outcome of one attempt, delivered back to
// the owning goroutine via Finish.
type Completion struct {
	Result *trace.Result
	Err    error
}
