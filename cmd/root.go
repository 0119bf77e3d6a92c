package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anik54992/eduboost/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eduboost",
	Short: "Study tracker and AI tutor for SSC/HSC students",
	Long:  "EduBoost — terminal study companion with a focus timer, daily planner, progress analytics, and an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUBOOST_DB env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EDUBOOST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database and seeds the default curriculum on first
// run.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := st.Subjects().SeedDefaults(context.Background()); err != nil {
		st.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return st, nil
}
