package session

import (
	"context"
	"errors"
	"testing"

	"github.com/ormasoftchile/taskview/pkg/trace"
)

// fakeExecutor records calls and returns a canned result or error.
type fakeExecutor struct {
	calls  int
	result *trace.Result
	err    error
}

func (f *fakeExecutor) RunTask(ctx context.Context, instruction string) (*trace.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestBegin_BlankInstructionIsNoOp(t *testing.T) {
	exec := &fakeExecutor{}
	s := New(exec)

	for _, in := range []string{"", "   ", "\t\n"} {
		if _, ok := s.Begin(in); ok {
			t.Errorf("Begin(%q) accepted", in)
		}
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if exec.calls != 0 {
		t.Errorf("executor called %d times", exec.calls)
	}
}

func TestBegin_SingleFlight(t *testing.T) {
	exec := &fakeExecutor{result: &trace.Result{}}
	s := New(exec)

	att, ok := s.Begin("first")
	if !ok {
		t.Fatal("first Begin rejected")
	}
	if s.State() != StateSubmitting {
		t.Fatalf("state = %v", s.State())
	}

	// Extra submits while in flight are rejected, not queued.
	for i := 0; i < 3; i++ {
		if _, ok := s.Begin("second"); ok {
			t.Fatal("submit accepted while submitting")
		}
	}

	s.Finish(att.Run(context.Background()))
	if exec.calls != 1 {
		t.Errorf("executor called %d times, want 1", exec.calls)
	}
	if s.State() != StateIdle {
		t.Errorf("state after success = %v", s.State())
	}
}

func TestFinish_SuccessReplacesResultWholesale(t *testing.T) {
	first := &trace.Result{Steps: []trace.Step{{Text: "old"}}, Diagram: "graph TD;OLD;"}
	second := &trace.Result{Steps: []trace.Step{{Text: "new"}}, Diagram: "graph TD;NEW;"}

	exec := &fakeExecutor{result: first}
	s := New(exec)

	att, _ := s.Begin("one")
	s.Finish(att.Run(context.Background()))

	exec.result = second
	att, _ = s.Begin("two")
	s.Finish(att.Run(context.Background()))

	// Trace and diagram always come from the same result.
	got := s.Result()
	if got.Steps[0].Text != "new" || got.Diagram != "graph TD;NEW;" {
		t.Errorf("result = %+v, want second result wholesale", got)
	}
}

func TestFinish_FailureSurfacesReasonAndRecovers(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("backend returned HTTP 500")}
	s := New(exec)

	att, _ := s.Begin("doomed")
	s.Finish(att.Run(context.Background()))

	if s.State() != StateFailed {
		t.Fatalf("state = %v, want failed", s.State())
	}
	if s.Reason() != "backend returned HTTP 500" {
		t.Errorf("reason = %q", s.Reason())
	}

	// A new submit from Failed is accepted and clears the reason.
	exec.err = nil
	exec.result = &trace.Result{}
	att, ok := s.Begin("retry")
	if !ok {
		t.Fatal("submit from failed state rejected")
	}
	if s.Reason() != "" {
		t.Errorf("reason not cleared: %q", s.Reason())
	}
	s.Finish(att.Run(context.Background()))
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
}

func TestFinish_FailureKeepsPreviousResult(t *testing.T) {
	exec := &fakeExecutor{result: &trace.Result{Diagram: "graph TD;KEEP;"}}
	s := New(exec)

	att, _ := s.Begin("one")
	s.Finish(att.Run(context.Background()))

	exec.err = errors.New("boom")
	att, _ = s.Begin("two")
	s.Finish(att.Run(context.Background()))

	if s.Result() == nil || s.Result().Diagram != "graph TD;KEEP;" {
		t.Error("failure must not clobber the previous result")
	}
}

func TestFinish_IgnoredOutsideSubmitting(t *testing.T) {
	s := New(&fakeExecutor{})
	// A stray completion must not invent state transitions.
	s.Finish(Completion{Err: errors.New("stale")})
	if s.State() != StateIdle || s.Reason() != "" {
		t.Errorf("state = %v reason = %q", s.State(), s.Reason())
	}
}

func TestAttempt_TrimsInstruction(t *testing.T) {
	s := New(&fakeExecutor{result: &trace.Result{}})
	att, ok := s.Begin("  do the thing  ")
	if !ok {
		t.Fatal("rejected")
	}
	if att.Instruction() != "do the thing" {
		t.Errorf("instruction = %q", att.Instruction())
	}
}
