package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/session"
)

var (
	logDate   string
	logReps   string
	logWeight string
)

var logCmd = &cobra.Command{
	Use:   "log [exercise-index] [set-index]",
	Short: "Record reps and/or weight for a set in the day's session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if logReps == "" && logWeight == "" {
			return fmt.Errorf("nothing to log, pass --reps and/or --weight")
		}

		exIdx, setIdx, err := parseIndices(args)
		if err != nil {
			return err
		}

		date, err := resolveDate(logDate)
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

		if logReps != "" {
			if err := session.SetField(s, exIdx, setIdx, session.FieldActualReps, logReps); err != nil {
				return err
			}
		}
		if logWeight != "" {
			if err := session.SetField(s, exIdx, setIdx, session.FieldWeight, logWeight); err != nil {
				return err
			}
		}

		if err := store.Put(s); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		fmt.Printf("✅ Logged set %d of %s\n", setIdx+1, s.Exercises[exIdx].Name)
		return nil
	},
}

// parseIndices converts the 1-based CLI indices to 0-based.
func parseIndices(args []string) (int, int, error) {
	exIdx, err := strconv.Atoi(args[0])
	if err != nil || exIdx < 1 {
		return 0, 0, fmt.Errorf("invalid exercise index, must be a positive integer")
	}

	setIdx, err := strconv.Atoi(args[1])
	if err != nil || setIdx < 1 {
		return 0, 0, fmt.Errorf("invalid set index, must be a positive integer")
	}

	return exIdx - 1, setIdx - 1, nil
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Session date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVarP(&logReps, "reps", "r", "", "Reps performed (free-form, e.g. 8)")
	logCmd.Flags().StringVarP(&logWeight, "weight", "w", "", "Weight used (free-form, e.g. 80kg)")
}
