package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ormasoftchile/taskview/pkg/mermaid"
	"github.com/ormasoftchile/taskview/pkg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a Mermaid flowchart definition offline",
	Long: `Render a Mermaid flowchart definition as an ASCII artifact without
contacting the executor. Reads from the given file, or from stdin when
no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read definition: %w", err)
		}

		o := render.New(mermaid.Engine{}).Render(cmd.Context(), string(data))
		if o.Fallback {
			fmt.Fprintln(cmd.ErrOrStderr(), "definition failed to parse — echoing raw text")
		}
		fmt.Fprintln(cmd.OutOrStdout(), o.Artifact)
		return nil
	},
}
