package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Permanently delete all stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("this permanently deletes all session data, re-run with --yes to confirm")
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear sessions: %w", err)
		}

		fmt.Println("✅ All session data deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm deletion")
}
