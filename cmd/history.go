package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()
		history, err := svc.History(ctx)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(history) == 0 {
			fmt.Fprintln(out, "No assessments recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-12s %-3s %-3s %-3s %-3s %-5s %-10s %s\n",
			"DATE", "FOC", "DIS", "EXE", "CON", "TOTAL", "RANK", "MIND TYPE")
		for _, r := range history {
			fmt.Fprintf(out, "%-12s %-3d %-3d %-3d %-3d %-5d %-10s %s\n",
				r.Date, r.Focus, r.Discipline, r.Execution, r.Consistency,
				r.Total, r.Rank, r.MindType)
		}

		if err := svc.MarkViewed(ctx, len(history)-1); err != nil {
			return fmt.Errorf("mark viewed: %w", err)
		}
		return nil
	},
}
