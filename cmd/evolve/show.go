package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"evokit/internal/report"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <champion.json>",
		Short: "Print a saved champion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			champion, err := report.LoadChampion(args[0])
			if err != nil {
				return fmt.Errorf("load champion: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run:         %d\n", champion.Run)
			fmt.Fprintf(out, "Generations: %d\n", champion.Generations)
			fmt.Fprintf(out, "Objective:   %g\n", champion.Objective)
			fmt.Fprintf(out, "Fitness:     %g\n", champion.Fitness)
			if champion.Rendering != "" {
				fmt.Fprintf(out, "Best:        %s\n", champion.Rendering)
			}

			var genome bytes.Buffer
			if err := json.Compact(&genome, champion.Genome); err != nil {
				return fmt.Errorf("decode genome: %w", err)
			}
			fmt.Fprintf(out, "Genome:      %s\n", genome.String())
			return nil
		},
	}
}
