package cmd

import (
	"fmt"

	"markbookctl/pkg/scraper"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save the scraped markbook rows for offline replay",
	Long:  `Scrapes the portal once and writes the raw rows to a file that any command can replay with --from.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			var err error
			if output, err = scraper.DefaultSnapshotPath(); err != nil {
				return err
			}
		}

		client := scraper.NewClient(env.Session).WithBaseURL(cfg.BaseURL)

		var scrapeErr error
		var courses int

		_ = spinner.New().
			Title("Scraping markbooks from Maplewood...").
			Context(cmd.Context()).
			Action(func() {
				rows, err := client.Scrape(cmd.Context(), log)
				if err != nil {
					scrapeErr = err
					return
				}
				courses = len(rows)
				scrapeErr = scraper.WriteSnapshot(output, rows)
			}).
			Run()

		if scrapeErr != nil {
			return fmt.Errorf("failed to take snapshot: %w", scrapeErr)
		}

		fmt.Printf("Saved %d courses to %s\n", courses, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().StringP("output", "o", "", "Snapshot file (default ~/.markbookctl_snapshots/latest.json)")
}
