package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"markbookctl/pkg/markbook"

	"github.com/PuerkitoBio/goquery"
)

const markbookPath = "connectEd/viewer/Achieve/TopicBas/StuMrks.aspx/GetMarkbook"

// termMarkStyle marks the div holding "Term Mark: 87.5" above the markbook table
const termMarkStyle = "font-weight: bold; margin-bottom: 3px;"

// roleByIndent maps the name span's indentation to the row's nesting role
var roleByIndent = map[string]markbook.Role{
	"margin-left: 0px":  markbook.RoleUnit,
	"margin-left: 20px": markbook.RoleSection,
	"margin-left: 40px": markbook.RoleAssignment,
}

// FetchMarkbook downloads a course markbook and classifies its rows
func (c *Client) FetchMarkbook(ctx context.Context, ref MarkbookRef) (markbook.Mark, []markbook.Row, error) {
	body := markbookRequest{
		MarkbookRef: ref,
		FromDate:    "1/1/2000",
		ToDate:      "1/1/3000",
		RelPath:     "../../../",
		OrgID:       -1,
	}

	resp, err := c.PostJSON(ctx, markbookPath, body)
	if err != nil {
		return markbook.Mark{}, nil, err
	}
	defer resp.Body.Close()

	var wrapped markbookResponse
	if err := json.NewDecoder(resp.Body).Decode(&wrapped); err != nil {
		return markbook.Mark{}, nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	return ParseMarkbook(strings.NewReader(wrapped.D))
}

// ParseMarkbook reads the term mark and the classified rows out of a markbook HTML fragment.
// Rows without an indented name span are headers.
func ParseMarkbook(r io.Reader) (markbook.Mark, []markbook.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return markbook.Mark{}, nil, err
	}

	termMark, err := parseTermMark(doc)
	if err != nil {
		return markbook.Mark{}, nil, err
	}

	var rows []markbook.Row
	doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cols []string
		tr.Find("td, th").Each(func(j int, td *goquery.Selection) {
			cols = append(cols, strings.TrimSpace(td.Text()))
		})

		row := markbook.Row{
			RawMark:     col(cols, 1),
			Date:        col(cols, 2),
			Weight:      col(cols, 3),
			Denominator: col(cols, 4),
			Role:        markbook.RoleHeader,
		}

		if span := tr.Find("span").First(); span.Length() > 0 {
			row.Name = strings.TrimSpace(span.Text())
			style, _ := span.Attr("style")
			if role, ok := roleByIndent[normalizeStyle(style)]; ok {
				row.Role = role
			}
		} else {
			row.Name = col(cols, 0)
		}

		// Teacher comments hang off an icon's tooltip
		if tip := tr.Find("[title]").Not("span").First(); tip.Length() > 0 {
			if text := strings.TrimSpace(tip.AttrOr("title", "")); text != "" {
				row.Comment = &markbook.Comment{Title: tip.AttrOr("alt", ""), Text: text}
			}
		}

		rows = append(rows, row)
	})

	return termMark, rows, nil
}

func parseTermMark(doc *goquery.Document) (markbook.Mark, error) {
	var text string
	doc.Find("div").EachWithBreak(func(i int, div *goquery.Selection) bool {
		style, _ := div.Attr("style")
		if normalizeStyle(style) == normalizeStyle(termMarkStyle) {
			text = div.Text()
			return false
		}
		return true
	})

	_, value, _ := strings.Cut(text, ":")
	mark, err := markbook.ParseMark(value)
	if err != nil {
		return markbook.Mark{}, fmt.Errorf("term mark: %w", err)
	}
	return mark, nil
}

// normalizeStyle trims whitespace and a trailing semicolon so "margin-left: 20px;" matches
func normalizeStyle(style string) string {
	return strings.TrimSuffix(strings.TrimSpace(style), ";")
}

func col(cols []string, i int) string {
	if i < len(cols) {
		return cols[i]
	}
	return ""
}
