package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ormasoftchile/taskview/pkg/backend"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the executor's response",
	Long: `Print the JSON Schema the client validates run-task responses
against. Useful for checking an executor implementation against the
wire contract.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := backend.GenerateResponseSchema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
