package backend

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// GenerateResponseSchema produces a JSON Schema Draft 2020-12 document
// from the Go RunTaskResponse struct using invopop/jsonschema.
func GenerateResponseSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = false

	s := r.Reflect(&RunTaskResponse{})
	s.ID = "https://github.com/ormasoftchile/taskview/schemas/run-task-response-v0.json"
	s.Title = "Run Task Response v0"
	s.Description = "Schema for the POST /api/run-task success response body (Draft 2020-12)"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

var (
	schemaOnce     sync.Once
	compiledSchema *sjsonschema.Schema
	schemaErr      error
)

// responseSchema compiles the generated schema once per process.
func responseSchema() (*sjsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := GenerateResponseSchema()
		if err != nil {
			schemaErr = err
			return
		}
		var doc interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			schemaErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}
		c := sjsonschema.NewCompiler()
		if err := c.AddResource("run-task-response-v0.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("run-task-response-v0.json")
	})
	return compiledSchema, schemaErr
}

// decodeResponse validates a success body against the response schema
// and decodes it. Any violation is a MalformedResponseError — the
// session surfaces it and recovers, it is never fatal.
func decodeResponse(raw []byte) (*RunTaskResponse, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}

	sch, err := responseSchema()
	if err != nil {
		return nil, fmt.Errorf("response schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}

	var r RunTaskResponse
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("decode: %v", err)}
	}
	return &r, nil
}
