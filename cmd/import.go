package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marblesj/wace-student-trainer/internal/engine"
)

var importCmd = &cobra.Command{
	Use:   "import <package.json>",
	Short: "Import a teacher update package",
	Long:  "Import validates an update package, adds its questions and diagrams, applies its schedule grant, and records it so the same package is never applied twice.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read package: %w", err)
		}

		st, eng, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		summary, err := eng.ImportUpdate(cmd.Context(), raw)
		if engine.IsDuplicateImport(err) {
			fmt.Println("This update has already been imported. Nothing to do.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Imported %q (%s)\n", summary.Description, summary.UpdateID)
		fmt.Printf("  questions added:   %d\n", summary.ImportedCount)
		if summary.DiagramsAdded > 0 {
			fmt.Printf("  diagrams added:    %d\n", summary.DiagramsAdded)
		}
		if summary.NewlyUnlocked > 0 {
			fmt.Printf("  topics unlocked:   %d\n", summary.NewlyUnlocked)
		}
		return nil
	},
}
