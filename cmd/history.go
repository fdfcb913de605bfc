package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/session"
)

var historyDay string

// historyCmd lists every stored session, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display past sessions, optionally filtered by training day",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		sessions, err := store.ListAll()
		if err != nil {
			return fmt.Errorf("failed to retrieve sessions: %w", err)
		}

		// Case insensitive filtering by training-day name or id.
		if historyDay != "" {
			filtered := sessions[:0]
			for _, s := range sessions {
				if strings.EqualFold(s.TrainingDayID, historyDay) ||
					strings.EqualFold(s.TrainingDayName, historyDay) {
					filtered = append(filtered, s)
				}
			}
			sessions = filtered
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions recorded.")
			return nil
		}

		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].Date > sessions[j].Date
		})

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		for i := range sessions {
			s := &sessions[i]
			fmt.Printf("%s  %s  %s\n",
				cyan(s.Date),
				s.TrainingDayName,
				green(fmt.Sprintf("%d%%", session.Progress(s))),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyDay, "day", "t", "", "Filter by training day name or id (case insensitive)")
}
