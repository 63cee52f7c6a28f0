package main

import (
	"github.com/spf13/cobra"

	"github.com/ormasoftchile/taskview/pkg/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the full-screen terminal interface",
	Long: `Open the interactive terminal interface: a prompt for task
instructions, the live reasoning trace on the left, and the execution
diagram on the right.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}
		return tui.Run(tui.Config{Backend: cfg})
	},
}
