package report

import (
	"context"
	"fmt"

	"markbookctl/pkg/config"
	"markbookctl/pkg/markbook"
	"markbookctl/pkg/scraper"

	"github.com/rs/zerolog"
)

// Collect returns the classified rows of every course, either replayed from the snapshot at
// from or scraped live with the session in env.
func Collect(ctx context.Context, log zerolog.Logger, cfg *config.AppConfig, env *config.Env, from string) ([]markbook.CourseRows, error) {
	if from != "" {
		snap, err := scraper.ReadSnapshot(from)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", from).Time("taken", snap.Timestamp).Msg("replaying snapshot")
		return snap.Courses, nil
	}

	client := scraper.NewClient(env.Session).WithBaseURL(cfg.BaseURL)
	courses, err := client.Scrape(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape portal: %w", err)
	}
	return courses, nil
}

// OptionsFrom builds report options from the persisted configuration
func OptionsFrom(cfg *config.AppConfig) (Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Grades:   cfg.GradeSettings(),
		User:     cfg.Username,
		Location: loc,
		Aliases:  cfg.Aliases,
	}, nil
}

// Load collects rows and builds the report in one step
func Load(ctx context.Context, log zerolog.Logger, cfg *config.AppConfig, env *config.Env, from string) (*Report, error) {
	inputs, err := Collect(ctx, log, cfg, env, from)
	if err != nil {
		return nil, err
	}
	opts, err := OptionsFrom(cfg)
	if err != nil {
		return nil, err
	}
	return Build(log, inputs, opts)
}
