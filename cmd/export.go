package cmd

import (
	"fmt"
	"os"

	"markbookctl/pkg/exporter"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the markbook report to JSON or an ICS calendar",
	Long: `Export every course tree and GPA figure as JSON, or every dated assignment
as an all-day event in an ICS file, without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		if format != "json" && format != "ics" {
			return fmt.Errorf("unknown format %q (expected json or ics)", format)
		}
		if output == "" {
			output = "markbook." + format
		}

		rep, err := loadReport(cmd.Context())
		if err != nil {
			return err
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		switch format {
		case "json":
			err = exporter.WriteJSON(rep, file)
		case "ics":
			loc, locErr := cfg.Location()
			if locErr != nil {
				return locErr
			}
			err = exporter.GenerateICS(rep.Courses, loc, file)
		}
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", format, err)
		}

		fmt.Printf("Successfully exported %d courses to %s\n", len(rep.Courses), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "json", "Export format: json or ics")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default markbook.<format>)")
}
