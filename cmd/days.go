package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/catalog"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the available training-day templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := catalog.Load()
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		for _, day := range days {
			fmt.Printf("%s  %s\n", cyan(day.ID), day.Name)
			fmt.Printf("   %s %s %d×%s", yellow("Main:"), day.MainLift.Name, day.MainLift.Sets, day.MainLift.Reps)
			if day.MainLift.IntensityNote != "" {
				fmt.Printf(" (%s)", day.MainLift.IntensityNote)
			}
			fmt.Printf("\n   %s %d\n", yellow("Accessories:"), len(day.Accessories))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
}
