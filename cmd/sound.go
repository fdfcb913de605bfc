package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/config"
)

var soundCmd = &cobra.Command{
	Use:   "sound [on|off]",
	Short: "Toggle the rest-timer sound, or show the current setting",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if len(args) == 0 {
			state := "off"
			if settings.Sound {
				state = "on"
			}
			fmt.Printf("Sound is %s\n", state)
			return nil
		}

		switch args[0] {
		case "on":
			settings.Sound = true
		case "off":
			settings.Sound = false
		default:
			return fmt.Errorf("invalid value %q, expected on or off", args[0])
		}

		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		fmt.Printf("✅ Sound %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(soundCmd)
}
