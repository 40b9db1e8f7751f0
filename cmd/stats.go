package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"neuroforge/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show current level, XP, streak, and rank",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		ov, err := svc.Overview(cmd.Context())
		if err != nil {
			return fmt.Errorf("load overview: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Level   %d  (%d/%d XP into level)\n",
			ov.Level.Level, ov.Level.XPIntoLevel, ov.Level.XPRequiredForNext)
		fmt.Fprintf(out, "XP      %d total\n", ov.XP)
		fmt.Fprintf(out, "Streak  %d day(s)\n", ov.Streak)

		if ov.Latest == nil {
			fmt.Fprintln(out, "\nNo assessments yet. Run `neuroforge` to take one.")
			return nil
		}

		rank := progression.Rank(ov.Latest.Rank)
		fmt.Fprintf(out, "\nMind type   %s\n", ov.Latest.MindType)
		fmt.Fprintf(out, "Rank        %s  (%d%% through band, next: %s)\n",
			rank, ov.RankProgress, progression.NextRank(rank))
		fmt.Fprintf(out, "Last active %s  ·  %d assessment(s) recorded\n",
			ov.LastActiveDate, ov.HistoryCount)
		return nil
	},
}
