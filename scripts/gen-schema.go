//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/ormasoftchile/taskview/pkg/backend"
)

func main() {
	data, err := backend.GenerateResponseSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll("schemas", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("schemas/run-task-response-v0.json", data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("wrote schemas/run-task-response-v0.json")
}
