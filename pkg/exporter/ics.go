package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"markbookctl/pkg/markbook"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// uidNamespace derives event UIDs, so the same assignment always gets the same UID
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://markbookctl/assignments"))

// GenerateICS writes one all-day event per dated assignment of the given courses.
// Assignments without a parseable date are skipped.
func GenerateICS(courses []markbook.Course, loc *time.Location, w io.Writer) error {
	if loc == nil {
		return fmt.Errorf("no time zone given")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//markbookctl//Markbook Assignments//EN")
	cal.SetXWRCalName("Markbook")

	now := time.Now()
	for _, c := range courses {
		for _, a := range assignmentsOf(c) {
			date, err := markbook.ParseDate(a.Date, loc)
			if err != nil {
				continue
			}

			uid := uuid.NewSHA1(uidNamespace, []byte(strings.Join([]string{c.Name, a.Unit, a.Section, a.Name, a.Date}, "\x00")))

			event := cal.AddEvent(uid.String())
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
			event.SetSummary(fmt.Sprintf("%s: %s", c.DisplayName(), a.Name))
			event.SetDescription(describe(a))
		}
	}

	return cal.SerializeTo(w)
}

func assignmentsOf(c markbook.Course) []markbook.Assignment {
	var all []markbook.Assignment
	for _, u := range c.Units {
		all = append(all, u.Assignments...)
		for _, s := range u.Sections {
			all = append(all, s.Assignments...)
		}
	}
	return all
}

func describe(a markbook.Assignment) string {
	path := a.Unit
	if a.Section != "" {
		path += " / " + a.Section
	}

	lines := []string{
		fmt.Sprintf("Unit: %s", path),
		fmt.Sprintf("Mark: %s", orNA(a.Mark)),
	}
	if !a.Denominator.IsAbsent() {
		lines = append(lines, fmt.Sprintf("Out of: %s", a.Denominator))
	}
	if !a.Weight.IsAbsent() {
		lines = append(lines, fmt.Sprintf("Weight: %s", a.Weight))
	}
	if a.Comment != nil && a.Comment.Text != "" {
		lines = append(lines, fmt.Sprintf("Comment: %s", a.Comment.Text))
	}
	return strings.Join(lines, "\n")
}

func orNA(m markbook.Mark) string {
	if m.IsAbsent() {
		return "n/a"
	}
	return m.String()
}
