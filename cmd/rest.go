package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/internal/tui"
)

var restCmd = &cobra.Command{
	Use:   "rest [seconds]",
	Short: "Run a rest countdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil || seconds < 1 {
			return fmt.Errorf("invalid duration, must be a positive number of seconds")
		}

		settings, err := config.LoadSettings()
		if err != nil {
			settings = config.DefaultSettings()
		}

		if _, err := tui.RunRestTimer(seconds, settings.Sound); err != nil {
			return fmt.Errorf("rest timer failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restCmd)
}
