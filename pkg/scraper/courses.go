package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"markbookctl/pkg/markbook"

	"github.com/PuerkitoBio/goquery"
)

const mainPagePath = "connectEd/viewer/Viewer/main.aspx"

// ErrCourseTableNotFound usually means the session expired and the portal served its login page
var ErrCourseTableNotFound = errors.New("course table not found on main page")

// FetchCourses retrieves the course list from the portal's main page
func (c *Client) FetchCourses(ctx context.Context) ([]Listing, error) {
	resp, err := c.Get(ctx, mainPagePath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return ParseCourses(resp.Body)
}

// ParseCourses extracts the secondary class table from the main page HTML.
// The first three rows of the table are headings.
func ParseCourses(r io.Reader) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("#TableSecondaryClasses")
	if table.Length() == 0 {
		return nil, ErrCourseTableNotFound
	}

	var listings []Listing
	var parseErr error

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i < 3 || parseErr != nil {
			return
		}

		var cols []string
		row.Find("td").Each(func(j int, td *goquery.Selection) {
			cols = append(cols, strings.TrimSpace(td.Text()))
		})
		if len(cols) < 6 {
			return
		}

		listing, err := parseCourseRow(cols, row.Find("a").First())
		if err != nil {
			parseErr = fmt.Errorf("course table row %d: %w", i, err)
			return
		}
		listings = append(listings, listing)
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return listings, nil
}

// parseCourseRow reads "CODE 1234 - Course Name", teacher, last updated, absences, excused and late
func parseCourseRow(cols []string, link *goquery.Selection) (Listing, error) {
	codePart, name, ok := strings.Cut(cols[0], " - ")
	if !ok {
		return Listing{}, fmt.Errorf("unexpected course title %q", cols[0])
	}

	updated := cols[2]
	if updated == "n.a." {
		updated = ""
	}

	course := markbook.Course{
		Code:        strings.Join(strings.Fields(codePart), ""),
		Name:        strings.TrimSpace(name),
		Teacher:     cols[1],
		LastUpdated: updated,
		Active:      updated != "",
		Units:       []markbook.Unit{},
	}

	// Attendance is all or nothing, keyed off the absences column
	if cols[3] != "NA" {
		var err error
		if course.Absences, err = atoiPtr(cols[3]); err != nil {
			return Listing{}, err
		}
		if course.Excused, err = atoiPtr(cols[4]); err != nil {
			return Listing{}, err
		}
		if course.Late, err = atoiPtr(cols[5]); err != nil {
			return Listing{}, err
		}
	}

	listing := Listing{Course: course}
	if onclick, exists := link.Attr("onclick"); exists {
		ref, err := parseMarkbookRef(onclick)
		if err != nil {
			return Listing{}, err
		}
		listing.Ref = ref
	}
	return listing, nil
}

// parseMarkbookRef reads the ids out of e.g. "LoadMarkBook(1234,5678,9,0);"
func parseMarkbookRef(onclick string) (*MarkbookRef, error) {
	_, args, ok := strings.Cut(onclick, "(")
	if ok {
		args, _, ok = strings.Cut(args, ")")
	}
	if !ok {
		return nil, fmt.Errorf("unexpected markbook link %q", onclick)
	}

	parts := strings.Split(args, ",")
	if len(parts) < 4 {
		return nil, fmt.Errorf("unexpected markbook link %q", onclick)
	}

	ids := make([]int, 4)
	for i := range ids {
		v, err := strconv.Atoi(strings.Trim(strings.TrimSpace(parts[i]), `'"`))
		if err != nil {
			return nil, fmt.Errorf("unexpected markbook id in %q: %w", onclick, err)
		}
		ids[i] = v
	}

	return &MarkbookRef{StudentID: ids[0], ClassID: ids[1], TermID: ids[2], TopicID: ids[3]}, nil
}

func atoiPtr(s string) (*int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("unexpected attendance count %q: %w", s, err)
	}
	return &v, nil
}
