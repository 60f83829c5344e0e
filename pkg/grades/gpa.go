package grades

import (
	"errors"
	"fmt"
	"slices"

	"markbookctl/pkg/markbook"
)

// ErrNoMarksAvailable is returned when an average would be taken over no marks
var ErrNoMarksAvailable = errors.New("no marks available")

// ProgramGroup is a named set of course names whose marks are averaged together
// before they count towards the overall GPA.
type ProgramGroup struct {
	Name    string   `json:"name" validate:"required"`
	Courses []string `json:"courses" validate:"required,min=1,dive,required"`
}

// Contains reports whether the course name is on the group's allow-list (exact match)
func (g ProgramGroup) Contains(courseName string) bool {
	return slices.Contains(g.Courses, courseName)
}

// ProgramAverage is the mean mark of one program group
type ProgramAverage struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Courses int     `json:"courses"`
}

func mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoMarksAvailable
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// groupOf returns the index of the first group listing the course, or -1
func groupOf(groups []ProgramGroup, name string) int {
	for i, g := range groups {
		if g.Contains(name) {
			return i
		}
	}
	return -1
}

// partition splits the numeric course marks into per-group buckets and an ungrouped list
func partition(courses []markbook.Course, groups []ProgramGroup) ([][]float64, []float64) {
	grouped := make([][]float64, len(groups))
	var ungrouped []float64

	for _, c := range courses {
		mark, ok := c.Mark.Float()
		if !ok {
			continue
		}
		if i := groupOf(groups, c.Name); i >= 0 {
			grouped[i] = append(grouped[i], mark)
		} else {
			ungrouped = append(ungrouped, mark)
		}
	}
	return grouped, ungrouped
}

// ProgramAverages returns the mean of every group that has at least one numeric mark, in group order
func ProgramAverages(courses []markbook.Course, groups []ProgramGroup) []ProgramAverage {
	grouped, _ := partition(courses, groups)

	var result []ProgramAverage
	for i, marks := range grouped {
		avg, err := mean(marks)
		if err != nil {
			continue
		}
		result = append(result, ProgramAverage{Name: groups[i].Name, Average: avg, Courses: len(marks)})
	}
	return result
}

// Overall averages each program group's mean together with every ungrouped course mark,
// so a program made of many small courses counts once.
func Overall(courses []markbook.Course, groups []ProgramGroup) (float64, error) {
	_, ungrouped := partition(courses, groups)

	contributions := ungrouped
	for _, p := range ProgramAverages(courses, groups) {
		contributions = append(contributions, p.Average)
	}

	gpa, err := mean(contributions)
	if err != nil {
		return 0, fmt.Errorf("overall GPA: %w", err)
	}
	return gpa, nil
}

// Restricted averages the numeric marks of the allow-listed courses only
func Restricted(courses []markbook.Course, allow []string) (float64, error) {
	var marks []float64
	for _, c := range courses {
		if mark, ok := c.Mark.Float(); ok && slices.Contains(allow, c.Name) {
			marks = append(marks, mark)
		}
	}

	gpa, err := mean(marks)
	if err != nil {
		return 0, fmt.Errorf("restricted GPA: %w", err)
	}
	return gpa, nil
}
