package backend

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGenerateResponseSchema_IsValidJSON(t *testing.T) {
	data, err := GenerateResponseSchema()
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if !strings.Contains(string(data), "mermaid_diagram") {
		t.Error("schema should describe mermaid_diagram")
	}
	if !strings.Contains(string(data), "extracted_content") {
		t.Error("schema should describe extracted_content")
	}
}

func TestDecodeResponse_AcceptsContractExample(t *testing.T) {
	body := `{"steps":[{"extracted_content":"Found 3 results"},{"error":"timeout"},{}],"mermaid_diagram":"graph TD;A-->B;"}`
	r, err := decodeResponse([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Steps) != 3 || r.MermaidDiagram != "graph TD;A-->B;" {
		t.Errorf("got %+v", r)
	}
}

func TestDecodeResponse_RejectsWrongTypes(t *testing.T) {
	body := `{"steps":[{"extracted_content":42}],"mermaid_diagram":""}`
	if _, err := decodeResponse([]byte(body)); err == nil {
		t.Error("expected schema violation for numeric extracted_content")
	}
}
