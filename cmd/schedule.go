package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the class schedule and unlocked topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, eng, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sum := eng.ScheduleSummary()
		fmt.Println(sum.ClassName)
		if sum.TeacherName != "" {
			fmt.Println("Teacher:", sum.TeacherName)
		}
		if sum.NextUnlock != nil {
			fmt.Printf("Next unlock: %s (%s)\n", sum.NextUnlock.Label, sum.NextUnlock.Date)
		}
		fmt.Println()

		unlocked := eng.Unlocked()
		all := eng.AllProblemTypes()
		unlockedSet := make(map[string]struct{}, len(unlocked))
		for _, pt := range unlocked {
			unlockedSet[pt] = struct{}{}
		}

		fmt.Printf("Unlocked %d of %d topics:\n", len(unlocked), len(all))
		for _, pt := range all {
			mark := " "
			if _, ok := unlockedSet[pt]; ok {
				mark = "✓"
			}
			fmt.Printf("  %s %s\n", mark, pt)
		}
		return nil
	},
}
