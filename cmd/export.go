package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marblesj/wace-student-trainer/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a progress report or a full backup",
}

var exportProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Export a progress report to share with your teacher",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, eng, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rep, err := report.BuildProgress(cmd.Context(), eng, st, version)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = report.ProgressFilename(rep.StudentName, time.Now())
		}
		if err := writeJSON(out, rep); err != nil {
			return err
		}
		fmt.Println("Progress report written to", out)
		return nil
	},
}

var exportBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export a full backup of local data",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		b, err := report.BuildBackup(cmd.Context(), st, version)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("wace-trainer-backup-%s.json", time.Now().Format("2006-01-02"))
		}
		if err := writeJSON(out, b); err != nil {
			return err
		}
		fmt.Println("Backup written to", out)
		return nil
	},
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func init() {
	exportProgressCmd.Flags().StringP("out", "o", "", "Output file (default: generated name)")
	exportBackupCmd.Flags().StringP("out", "o", "", "Output file (default: generated name)")
	exportCmd.AddCommand(exportProgressCmd)
	exportCmd.AddCommand(exportBackupCmd)
}
