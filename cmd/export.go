package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all sessions to a JSON backup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fmt.Sprintf("iron-log-backup-%s.json", time.Now().Format("2006-01-02"))
		if len(args) == 1 {
			path = args[0]
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create backup file: %w", err)
		}
		defer f.Close()

		if err := storage.Export(store, f); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("✅ Exported sessions to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
