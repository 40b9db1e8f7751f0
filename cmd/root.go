package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"neuroforge/internal/assessment"
	"neuroforge/internal/config"
	"neuroforge/internal/logger"
	"neuroforge/internal/notify"
	"neuroforge/internal/store"
	"neuroforge/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "neuroforge",
	Short: "Self-assessment quiz with ranks, XP, and streaks",
	Long: "Neuroforge — answer a short daily questionnaire, get a mind-type " +
		"classification, and track rank, XP, streaks, and achievements over time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, queue, closeFn, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		return tui.Run(svc, queue)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NEUROFORGE_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then NEUROFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and wires the assessment service. The
// returned closeFn must be deferred.
func openService(cmd *cobra.Command) (*assessment.Service, *notify.Queue, func(), error) {
	logCfg := logger.DefaultConfig()
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		logCfg.Level = lvl
	}
	log := logger.Setup(logCfg)

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	queue := notify.NewQueue()
	svc := assessment.New(st, queue, cfg)
	return svc, queue, func() { st.Close() }, nil
}
