package cmd

import (
	"fmt"

	"markbookctl/pkg/tui"

	"github.com/spf13/cobra"
)

var gpaCmd = &cobra.Command{
	Use:   "gpa",
	Short: "Show your overall and per-program GPA",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := loadReport(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Print(tui.RenderGPA(rep.GPA))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gpaCmd)
}
