package markbook

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the formats the portal uses for "last updated" and assignment dates
var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Mon, Jan 2, 2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"2 Jan 2006",
}

// ParseDate parses a portal date string in loc
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == noneToken {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) day {
	y, m, d := t.Date()
	return day{y, m, d}
}

func isDay(raw string, loc *time.Location, today day) bool {
	t, err := ParseDate(raw, loc)
	if err != nil {
		return false
	}
	return dayOf(t) == today
}

// AnnotateUpdates sets UpdatedToday on every course whose LastUpdated is today in loc, and on each
// of that course's assignments dated today together with their section and unit.
// Courses not updated today are left untouched.
func AnnotateUpdates(courses []Course, now time.Time, loc *time.Location) {
	today := dayOf(now.In(loc))

	for ci := range courses {
		course := &courses[ci]
		if !isDay(course.LastUpdated, loc, today) {
			continue
		}
		course.UpdatedToday = true

		for ui := range course.Units {
			unit := &course.Units[ui]
			for ai := range unit.Assignments {
				if isDay(unit.Assignments[ai].Date, loc, today) {
					unit.Assignments[ai].UpdatedToday = true
					unit.UpdatedToday = true
				}
			}
			for si := range unit.Sections {
				section := &unit.Sections[si]
				for ai := range section.Assignments {
					if isDay(section.Assignments[ai].Date, loc, today) {
						section.Assignments[ai].UpdatedToday = true
						section.UpdatedToday = true
						unit.UpdatedToday = true
					}
				}
			}
		}
	}
}
