package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all state as a JSON document",
	Long: "Export history, achievements, XP, streak, and the last-active date " +
		"as one JSON document. Writes to stdout when no file is given.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		raw, err := svc.ExportJSON(cmd.Context())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		}

		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
		return nil
	},
}
