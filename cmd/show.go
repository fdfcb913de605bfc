package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/tui"
)

var showDate string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the session for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := resolveDate(showDate)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		s := store.Get(date)
		if s == nil {
			return fmt.Errorf("no session for %s, pick a day with 'ironlog days' and run 'ironlog start'", date)
		}

		// Define color functions.
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		green := color.New(color.FgGreen, color.Bold).SprintFunc()

		fmt.Printf("%s\n", green(s.TrainingDayName))
		fmt.Printf("%s %s\n\n", cyan("Date:"), s.Date)

		for i, ex := range s.Exercises {
			printTrackedExercise(ex, i+1, cyan, yellow)
		}

		pct := session.Progress(s)
		fmt.Printf("%s %d%%  %s\n", green("Progress:"), pct, tui.ProgressBar(pct, 30))
		return nil
	},
}

func printTrackedExercise(ex models.TrackedExercise, idx int, cyan, yellow func(a ...interface{}) string) {
	fmt.Printf("%d - %s %s\n", idx, cyan(ex.Name), yellow(fmt.Sprintf("(%ds rest)", ex.RestSeconds)))
	if ex.Note != "" {
		fmt.Printf("   %s %s\n", cyan("Note:"), ex.Note)
	}

	// Table indent and column widths.
	tableIndent := "   "
	setColWidth := 5
	targetColWidth := 14
	repsColWidth := 10
	weightColWidth := 10
	doneColWidth := 6

	horizontalBorder := tableIndent + "┌" +
		strings.Repeat("─", setColWidth) + "┬" +
		strings.Repeat("─", targetColWidth) + "┬" +
		strings.Repeat("─", repsColWidth) + "┬" +
		strings.Repeat("─", weightColWidth) + "┬" +
		strings.Repeat("─", doneColWidth) + "┐"
	headerLine := fmt.Sprintf(tableIndent+"│%-*s│%-*s│%-*s│%-*s│%-*s│",
		setColWidth, "Set",
		targetColWidth, "Target",
		repsColWidth, "Reps",
		weightColWidth, "Weight",
		doneColWidth, "Done",
	)
	midBorder := tableIndent + "├" +
		strings.Repeat("─", setColWidth) + "┼" +
		strings.Repeat("─", targetColWidth) + "┼" +
		strings.Repeat("─", repsColWidth) + "┼" +
		strings.Repeat("─", weightColWidth) + "┼" +
		strings.Repeat("─", doneColWidth) + "┤"
	bottomBorder := tableIndent + "└" +
		strings.Repeat("─", setColWidth) + "┴" +
		strings.Repeat("─", targetColWidth) + "┴" +
		strings.Repeat("─", repsColWidth) + "┴" +
		strings.Repeat("─", weightColWidth) + "┴" +
		strings.Repeat("─", doneColWidth) + "┘"

	fmt.Println(horizontalBorder)
	fmt.Println(headerLine)
	fmt.Println(midBorder)

	for _, set := range ex.Sets {
		weight := set.Weight
		if weight == "" {
			weight = "-"
		}
		done := ""
		if set.Completed {
			done = "✓"
		}
		fmt.Printf(tableIndent+"│%-*d│%-*s│%-*s│%-*s│%-*s│\n",
			setColWidth, set.Index+1,
			targetColWidth, set.TargetReps,
			repsColWidth, set.ActualReps,
			weightColWidth, weight,
			doneColWidth, done,
		)
	}
	fmt.Println(bottomBorder)
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "Session date (YYYY-MM-DD, default today)")
}
