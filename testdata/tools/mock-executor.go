// mock-executor is a test helper binary that implements the run-task
// HTTP endpoint with canned responses, for exercising the client
// without a real browser-automation backend.
//
//go:build ignore

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	delay := flag.Duration("delay", 2*time.Second, "simulated task duration")
	flag.Parse()

	http.HandleFunc("/api/run-task", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			Task string `json:"task"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		// Simulate a long-running agent run.
		time.Sleep(*delay)

		// Tasks containing "fail" exercise the error path.
		if strings.Contains(body.Task, "fail") {
			http.Error(w, "agent crashed", http.StatusInternalServerError)
			return
		}

		content := func(s string) *string { return &s }
		resp := map[string]any{
			"steps": []map[string]any{
				{"extracted_content": content("Opened the start page"), "error": nil, "is_done": false},
				{"extracted_content": content("Clicked the search box"), "error": nil, "is_done": false},
				{"extracted_content": nil, "error": content("element not found, retrying"), "is_done": false},
				{"extracted_content": content("Task complete: " + body.Task), "error": nil, "is_done": true},
			},
			"mermaid_diagram": "graph TD;A[Start]-->B[Search];B-->C{Found?};C-->|yes|D[Done];C-->|no|B;",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	fmt.Fprintf(os.Stderr, "mock-executor: listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		fmt.Fprintf(os.Stderr, "mock-executor: %v\n", err)
		os.Exit(1)
	}
}
