package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/tui"
)

var (
	doneDate    string
	doneNoTimer bool
)

var doneCmd = &cobra.Command{
	Use:   "done [exercise-index] [set-index]",
	Short: "Toggle a set's completion and start the rest timer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, setIdx, err := parseIndices(args)
		if err != nil {
			return err
		}

		date, err := resolveDate(doneDate)
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

		completed, err := session.ToggleCompleted(s, exIdx, setIdx)
		if err != nil {
			return err
		}

		if err := store.Put(s); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		ex := s.Exercises[exIdx]
		if !completed {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Printf("%s set %d of %s reopened\n", yellow("↺"), setIdx+1, ex.Name)
			return nil
		}

		fmt.Printf("✅ Set %d of %s done (%d%% of session)\n",
			setIdx+1, ex.Name, session.Progress(s))

		// Rest only on the false -> true edge.
		if doneNoTimer || ex.RestSeconds <= 0 {
			return nil
		}

		settings, err := config.LoadSettings()
		if err != nil {
			settings = config.DefaultSettings()
		}

		if _, err := tui.RunRestTimer(ex.RestSeconds, settings.Sound); err != nil {
			return fmt.Errorf("rest timer failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)

	doneCmd.Flags().StringVarP(&doneDate, "date", "d", "", "Session date (YYYY-MM-DD, default today)")
	doneCmd.Flags().BoolVar(&doneNoTimer, "no-timer", false, "Skip the rest timer")
}
