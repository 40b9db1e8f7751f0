package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Irreversibly clear all recorded state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Fprint(cmd.OutOrStdout(), "This deletes all history, XP, streaks, and achievements. Type 'yes' to confirm: ")
			reader := bufio.NewReader(cmd.InOrStdin())
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		svc, _, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := svc.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All state cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
