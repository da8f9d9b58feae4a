package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marblesj/wace-student-trainer/internal/report"
	"github.com/marblesj/wace-student-trainer/internal/store"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Restore local data from a full backup",
	Long:  "Restore replaces all imported questions, schedule updates, diagrams, the profile, and session history with the backup's contents.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This replaces ALL local data with the backup's contents.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		b, err := report.ParseBackup(raw)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := report.Restore(cmd.Context(), st, b); err != nil {
			return err
		}
		fmt.Println("Backup restored.")
		return nil
	},
}

func init() {
	restoreCmd.Flags().Bool("yes", false, "Confirm replacing all local data")
}
