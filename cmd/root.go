package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "ironlog",
	Short: "Local-first workout log with templates and a rest timer",
}

func Execute() error {
	return rootCmd.Execute()
}

// openStore selects the storage engine for this invocation. Never fails:
// a broken database degrades to the single-session fallback.
func openStore() (storage.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return storage.Open(cfg), nil
}

// resolveDate turns the --date flag into the storage key, defaulting to
// today. Dates are local calendar days formatted 2006-01-02.
func resolveDate(flag string) (string, error) {
	if flag == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", flag); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flag)
	}
	return flag, nil
}
