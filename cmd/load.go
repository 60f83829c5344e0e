package cmd

import (
	"context"
	"fmt"

	"markbookctl/pkg/report"

	"github.com/charmbracelet/huh/spinner"
)

// loadReport fetches (or replays) the markbooks behind a spinner
func loadReport(ctx context.Context) (*report.Report, error) {
	var rep *report.Report
	var err error

	title := "Fetching markbooks from Maplewood..."
	if snapshotFrom != "" {
		title = fmt.Sprintf("Replaying snapshot %s...", snapshotFrom)
	}

	_ = spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			rep, err = report.Load(ctx, log, cfg, env, snapshotFrom)
		}).
		Run()

	if err != nil {
		return nil, err
	}
	return rep, nil
}
