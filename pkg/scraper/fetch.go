package scraper

import (
	"context"

	"markbookctl/pkg/markbook"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the number of markbook requests in flight
const maxConcurrentFetches = 4

// FetchMarkbooks downloads the markbook of every active course that has one.
// Results keep the order of listings. A failed course gets FetchError set and does not stop the others.
func (c *Client) FetchMarkbooks(ctx context.Context, log zerolog.Logger, listings []Listing) []markbook.CourseRows {
	results := make([]markbook.CourseRows, len(listings))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)

	for i, l := range listings {
		results[i].Course = l.Course
		if !l.Course.Active || l.Ref == nil {
			continue
		}

		i, l := i, l
		g.Go(func() error {
			mark, rows, err := c.FetchMarkbook(ctx, *l.Ref)
			if err != nil {
				log.Error().Err(err).Str("course", l.Course.Name).Msg("failed to fetch markbook")
				results[i].FetchError = err.Error()
				return nil
			}
			log.Debug().Str("course", l.Course.Name).Int("rows", len(rows)).Msg("fetched markbook")
			results[i].Course.Mark = mark
			results[i].Rows = rows
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Scrape fetches the course list and every markbook in one go
func (c *Client) Scrape(ctx context.Context, log zerolog.Logger) ([]markbook.CourseRows, error) {
	listings, err := c.FetchCourses(ctx)
	if err != nil {
		return nil, err
	}
	log.Info().Int("courses", len(listings)).Msg("fetched course list")

	return c.FetchMarkbooks(ctx, log, listings), nil
}
