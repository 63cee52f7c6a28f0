package main

import (
	"github.com/spf13/cobra"

	"github.com/ormasoftchile/taskview/pkg/backend"
	"github.com/ormasoftchile/taskview/pkg/mermaid"
	"github.com/ormasoftchile/taskview/pkg/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the plain interactive prompt",
	Long: `Start a line-oriented prompt: type an instruction to submit it,
':help' for commands. Useful over slow links or inside scripts where
the full-screen interface is unwanted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}
		r := repl.New(backend.NewClient(cfg), mermaid.Engine{}, cfg.LiveViewURL)
		return r.Run(cmd.Context())
	},
}
