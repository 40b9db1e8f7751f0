package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and their unlock status",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		statuses, err := svc.Evaluator().Statuses(cmd.Context())
		if err != nil {
			return fmt.Errorf("load achievements: %w", err)
		}

		out := cmd.OutOrStdout()
		earned := 0
		for _, st := range statuses {
			mark := " "
			if st.Unlocked {
				mark = "✓"
				earned++
			}
			fmt.Fprintf(out, "[%s] %s %s\n", mark, st.Rule.Icon, st.Rule.Title)
		}
		fmt.Fprintf(out, "\n%d of %d unlocked\n", earned, len(statuses))
		return nil
	},
}
