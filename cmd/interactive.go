package cmd

import (
	"markbookctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to browse markbooks, check your GPA, and export assignments interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(&tui.Session{Log: log, Env: env, From: snapshotFrom})
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
