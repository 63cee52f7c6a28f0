package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ormasoftchile/taskview/pkg/backend"
	"github.com/ormasoftchile/taskview/pkg/mermaid"
	"github.com/ormasoftchile/taskview/pkg/render"
	"github.com/ormasoftchile/taskview/pkg/session"
	"github.com/ormasoftchile/taskview/pkg/trace"
)

var (
	runFilter      string
	runJSON        bool
	runDiagramOnly bool
)

var runCmd = &cobra.Command{
	Use:   "run <instruction>",
	Short: "Submit one task and print its trace and diagram",
	Long: `Submit a single natural-language instruction to the executor, wait for
it to finish, and print the reasoning trace plus the rendered diagram.

Use --filter to narrow the trace with an expression over each step
(fields: index, text, kind, done), e.g. --filter 'kind == "error"'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}

		s := session.New(backend.NewClient(cfg))
		att, ok := s.Begin(args[0])
		if !ok {
			return fmt.Errorf("instruction must be non-blank")
		}

		s.Finish(att.Run(cmd.Context()))
		if s.State() == session.StateFailed {
			return fmt.Errorf("task failed: %s", s.Reason())
		}

		result := s.Result()
		steps := result.Steps
		if runFilter != "" {
			steps, err = trace.Filter(steps, runFilter)
			if err != nil {
				return fmt.Errorf("filter: %w", err)
			}
		}

		if runJSON {
			data, err := json.MarshalIndent(map[string]any{
				"steps":   steps,
				"diagram": result.Diagram,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		o := render.New(mermaid.Engine{}).Render(cmd.Context(), result.Diagram)
		if runDiagramOnly {
			fmt.Fprintln(cmd.OutOrStdout(), o.Artifact)
			return nil
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, trace.Render(steps))
		fmt.Fprintln(out)
		if o.Fallback {
			fmt.Fprintln(out, "diagram failed to render — raw definition:")
		}
		fmt.Fprintln(out, o.Artifact)
		if cfg.LiveViewURL != "" {
			fmt.Fprintf(out, "\nlive view: %s\n", cfg.LiveViewURL)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runFilter, "filter", "", "expression to filter trace steps")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the result as JSON")
	runCmd.Flags().BoolVar(&runDiagramOnly, "diagram-only", false, "print only the rendered diagram")
}
