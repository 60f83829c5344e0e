package report

import (
	"fmt"
	"time"

	"markbookctl/pkg/grades"
	"markbookctl/pkg/markbook"

	"github.com/rs/zerolog"
)

// Options are the static tables and clock a report is built with
type Options struct {
	Grades   grades.Settings
	User     string
	Location *time.Location
	Now      time.Time
	Aliases  map[string]string
}

// SkippedCourse records why a course has no tree in the report
type SkippedCourse struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report is the output handed to renderers and exporters
type Report struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Courses     []markbook.Course `json:"courses"`
	Skipped     []SkippedCourse   `json:"skipped,omitempty"`
	GPA         grades.Summary    `json:"gpa"`
}

// Build turns fetched rows into annotated course trees and GPA figures.
// A course whose rows cannot be fetched or built is still listed with its course table fields
// but gets an empty tree, an entry in Skipped, and no part in the GPA figures.
func Build(log zerolog.Logger, inputs []markbook.CourseRows, opts Options) (*Report, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	rep := &Report{GeneratedAt: opts.Now}
	courses := make([]markbook.Course, 0, len(inputs))
	var graded []markbook.Course

	for _, in := range inputs {
		course := in.Course
		course.Alias = opts.Aliases[course.Name]
		course.Units = []markbook.Unit{}

		switch {
		case !course.Active:
		case in.FetchError != "":
			rep.skip(log, course, fmt.Errorf("fetch failed: %s", in.FetchError))
			courses = append(courses, course)
			continue
		default:
			units, err := markbook.BuildUnits(log, course.Name, in.Rows)
			if err != nil {
				rep.skip(log, course, err)
				courses = append(courses, course)
				continue
			}
			course.Units = units
		}
		courses = append(courses, course)
		graded = append(graded, course)
	}

	markbook.AnnotateUpdates(courses, opts.Now, opts.Location)

	gpa, err := grades.Summarize(graded, opts.Grades, opts.User)
	if err != nil {
		return nil, err
	}
	rep.GPA = gpa
	rep.Courses = grades.SortCourses(courses, opts.Grades.Groups)

	return rep, nil
}

func (r *Report) skip(log zerolog.Logger, course markbook.Course, err error) {
	log.Warn().Err(err).Str("course", course.Name).Msg("skipping course")
	r.Skipped = append(r.Skipped, SkippedCourse{Name: course.Name, Reason: err.Error()})
}

// Course returns the course with the given code or name
func (r *Report) Course(key string) (markbook.Course, bool) {
	for _, c := range r.Courses {
		if c.Code == key || c.Name == key || (c.Alias != "" && c.Alias == key) {
			return c, true
		}
	}
	return markbook.Course{}, false
}
