package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import sessions from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open backup file: %w", err)
		}
		defer f.Close()

		count, err := storage.Import(store, f)
		if errors.Is(err, storage.ErrInvalidFile) {
			return fmt.Errorf("invalid file: %s is not a JSON session backup", args[0])
		}
		if err != nil {
			// Records upserted before the failure stay upserted.
			return fmt.Errorf("import stopped after %d sessions: %w", count, err)
		}

		fmt.Printf("✅ Imported %d sessions\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
