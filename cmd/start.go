package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/catalog"
	"github.com/ironlog/ironlog/internal/session"
)

var (
	startDate  string
	startForce bool
)

var startCmd = &cobra.Command{
	Use:   "start [day-id]",
	Short: "Start a session for the day from a training template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := catalog.Load()
		if err != nil {
			return err
		}

		tpl, ok := catalog.Find(days, args[0])
		if !ok {
			return fmt.Errorf("unknown training day %q, run 'ironlog days' to list them", args[0])
		}

		date, err := resolveDate(startDate)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		if existing := store.Get(date); existing != nil && !startForce {
			return fmt.Errorf("a session already exists for %s (%s), use --force to replace it",
				date, existing.TrainingDayName)
		}

		s := session.Build(tpl, date, time.Now())
		if err := store.Put(s); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		fmt.Printf("✅ Started %s for %s (%d exercises, %d sets)\n",
			s.TrainingDayName, s.Date, len(s.Exercises), s.TotalSets())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&startDate, "date", "d", "", "Session date (YYYY-MM-DD, default today)")
	startCmd.Flags().BoolVarP(&startForce, "force", "f", false, "Replace an existing session for the date")
}
