package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import state from a previously exported JSON document",
	Long: "Import a document produced by `neuroforge export`. Each section is " +
		"validated independently; malformed sections are skipped and existing " +
		"state for them is left untouched.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		report, err := svc.Import(cmd.Context(), raw)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range report.Applied {
			fmt.Fprintf(out, "applied  %s\n", name)
		}

		skipped := make([]string, 0, len(report.Skipped))
		for name := range report.Skipped {
			skipped = append(skipped, name)
		}
		sort.Strings(skipped)
		for _, name := range skipped {
			fmt.Fprintf(out, "skipped  %s: %s\n", name, report.Skipped[name])
		}
		return nil
	},
}
