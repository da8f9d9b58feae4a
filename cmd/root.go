package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marblesj/wace-student-trainer/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wace-trainer",
	Short: "WACE exam practice for students",
	Long:  "WACE Student Trainer — offline terminal app for practicing WACE exam questions, unlocked as your class schedule progresses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WACE_TRAINER_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Data directory holding the question bundle and class schedule")
	rootCmd.PersistentFlags().String("schedule", "", "Path to the class schedule JSON file")
	rootCmd.PersistentFlags().String("bundle", "", "Path to the base question bundle JSON file")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WACE_TRAINER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDataDir returns the data directory used to locate the bundled
// content files.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		return d, nil
	}
	return store.DefaultDataDir()
}

// resolveSchedulePath returns the class schedule file path.
func resolveSchedulePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("schedule"); p != "" {
		return p, nil
	}
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "schedule.json"), nil
}

// resolveBundlePath returns the base question bundle file path.
func resolveBundlePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("bundle"); p != "" {
		return p, nil
	}
	dir, err := resolveDataDir(cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "questions.json"), nil
}
