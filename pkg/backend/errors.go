package backend

import "fmt"

// TransportError reports a network failure or a non-success HTTP status
// while submitting a task. The response body, if any, is not interpreted.
type TransportError struct {
	Status int   // HTTP status code, 0 when the request never completed
	Err    error // underlying transport error, nil for status failures
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task submission failed: %v", e.Err)
	}
	return fmt.Sprintf("task submission failed: backend returned HTTP %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports a success status whose body could not
// be interpreted against the run-task response schema.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed backend response: %s", e.Reason)
}
