package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marblesj/wace-student-trainer/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data",
	Long:  "Reset removes imported questions, schedule updates, diagrams, the profile, and session history. The base question bundle and class schedule files are untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This deletes ALL local data. Re-run with --yes to confirm.")
			return nil
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

		ctx := cmd.Context()
		if err := st.Questions().Clear(ctx); err != nil {
			return err
		}
		if err := st.ScheduleUpdates().Clear(ctx); err != nil {
			return err
		}
		if err := st.Diagrams().Clear(ctx); err != nil {
			return err
		}
		if err := st.Profile().Clear(ctx); err != nil {
			return err
		}
		if err := st.Sessions().Clear(ctx); err != nil {
			return err
		}
		fmt.Println("All local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all local data")
}
