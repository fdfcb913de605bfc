package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/tui"
)

var progressDate string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completion percentage for a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(progressDate)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		s := store.Get(date)
		if s == nil {
			return fmt.Errorf("no session for %s", date)
		}

		pct := session.Progress(s)
		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Printf("%s %s\n", green(s.TrainingDayName), s.Date)
		fmt.Printf("%d/%d sets  %d%%  %s\n",
			s.CompletedSets(), s.TotalSets(), pct, tui.ProgressBar(pct, 30))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().StringVarP(&progressDate, "date", "d", "", "Session date (YYYY-MM-DD, default today)")
}
