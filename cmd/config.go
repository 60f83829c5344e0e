package cmd

import (
	"fmt"
	"time"

	"markbookctl/pkg/config"
	"markbookctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage markbookctl configuration",
	Long:  "View or edit your local configuration settings (username, reference time zone, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Edit the file as saved, not the environment overlay
		saved, err := config.Load()
		if err != nil {
			return err
		}

		setUser, _ := cmd.Flags().GetString("set-user")
		setTZ, _ := cmd.Flags().GetString("set-tz")
		show, _ := cmd.Flags().GetBool("show")

		if show {
			fmt.Print(tui.RenderConfig(saved))
			return nil
		}

		if setUser == "" && setTZ == "" {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI()
		}

		if setUser != "" {
			saved.Username = setUser
		}
		if setTZ != "" {
			if _, err := time.LoadLocation(setTZ); err != nil {
				return fmt.Errorf("unknown time zone %q: %w", setTZ, err)
			}
			saved.TimeZone = setTZ
		}

		if err := config.Save(saved); err != nil {
			return err
		}

		fmt.Println("✅ Configuration saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("set-user", "u", "", "Set your portal username")
	configCmd.Flags().StringP("set-tz", "z", "", "Set the reference time zone (IANA name)")
	configCmd.Flags().Bool("show", false, "Print the current configuration")
}
