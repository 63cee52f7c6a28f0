// Package backend implements the HTTP boundary to the remote task
// executor. The executor itself is opaque: one request per task, one
// JSON response carrying the step trace and the Mermaid diagram.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ormasoftchile/taskview/pkg/trace"
)

// runTaskPath is the executor's single task-submission endpoint.
const runTaskPath = "/api/run-task"

// maxResponseBytes caps how much of a response body is read. Agent
// traces are small; anything past this is a misbehaving backend.
const maxResponseBytes = 8 << 20

// Client talks to one task executor.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the executor at cfg.BackendURL.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// RunTask submits one instruction and blocks until the executor returns
// the completed run. Errors are classified: TransportError for network
// failures and non-success statuses, MalformedResponseError for a
// success body that fails the response schema.
func (c *Client) RunTask(ctx context.Context, instruction string) (*trace.Result, error) {
	body, err := json.Marshal(RunTaskRequest{Task: instruction})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runTaskPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The failure body is not part of the contract — drain and drop it.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &TransportError{Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	r, err := decodeResponse(raw)
	if err != nil {
		return nil, err
	}
	return r.result(), nil
}
