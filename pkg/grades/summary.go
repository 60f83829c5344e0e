package grades

import (
	"errors"
	"slices"

	"markbookctl/pkg/markbook"
)

// Settings are the static lookup tables the aggregator works from
type Settings struct {
	Groups            []ProgramGroup
	RestrictedCourses []string
	RestrictedUsers   []string
}

// Summary holds the GPA figures for one report. A nil figure means it is unavailable.
type Summary struct {
	Overall    *float64         `json:"overall"`
	Programs   []ProgramAverage `json:"programs"`
	Restricted *float64         `json:"restricted,omitempty"`
}

// RestrictedAllowed reports whether the restricted figure is enabled for user
func (s Settings) RestrictedAllowed(user string) bool {
	return user != "" && len(s.RestrictedCourses) > 0 && slices.Contains(s.RestrictedUsers, user)
}

// Summarize computes every figure, turning ErrNoMarksAvailable into a nil field.
// Any other error is returned as is.
func Summarize(courses []markbook.Course, s Settings, user string) (Summary, error) {
	summary := Summary{Programs: ProgramAverages(courses, s.Groups)}

	overall, err := Overall(courses, s.Groups)
	switch {
	case err == nil:
		summary.Overall = &overall
	case !errors.Is(err, ErrNoMarksAvailable):
		return Summary{}, err
	}

	if s.RestrictedAllowed(user) {
		restricted, err := Restricted(courses, s.RestrictedCourses)
		switch {
		case err == nil:
			summary.Restricted = &restricted
		case !errors.Is(err, ErrNoMarksAvailable):
			return Summary{}, err
		}
	}

	return summary, nil
}

// SortCourses orders courses for display: active ungrouped courses first, then each
// program group with its active courses ahead of inactive ones, then the remaining inactive courses.
// Relative order is otherwise preserved.
func SortCourses(courses []markbook.Course, groups []ProgramGroup) []markbook.Course {
	var head, inactive []markbook.Course
	buckets := make([][]markbook.Course, len(groups))

	for _, c := range courses {
		if i := groupOf(groups, c.Name); i >= 0 {
			buckets[i] = append(buckets[i], c)
			continue
		}
		if c.Active {
			head = append(head, c)
		} else {
			inactive = append(inactive, c)
		}
	}

	sorted := make([]markbook.Course, 0, len(courses))
	sorted = append(sorted, head...)
	for _, bucket := range buckets {
		slices.SortStableFunc(bucket, func(a, b markbook.Course) int {
			switch {
			case a.Active == b.Active:
				return 0
			case a.Active:
				return -1
			default:
				return 1
			}
		})
		sorted = append(sorted, bucket...)
	}
	return append(sorted, inactive...)
}
