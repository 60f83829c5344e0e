package tui

import (
	"strings"
	"testing"

	"markbookctl/pkg/config"
	"markbookctl/pkg/grades"
	"markbookctl/pkg/markbook"
	"markbookctl/pkg/report"
)

func sampleCourse() markbook.Course {
	absences := 3
	return markbook.Course{
		Code:         "MAT3791",
		Name:         "Mathematics 30-1 Pre-AP",
		Alias:        "Math 30",
		Teacher:      "Smith, J",
		LastUpdated:  "10/16/2026",
		Absences:     &absences,
		Mark:         markbook.Numeric(87.5),
		Active:       true,
		UpdatedToday: true,
		Units: []markbook.Unit{{
			Name:         "Term 1",
			Weight:       markbook.Numeric(1),
			Denominator:  markbook.Numeric(100),
			UpdatedToday: true,
			Assignments: []markbook.Assignment{
				{
					Name:         "Quiz 1",
					Mark:         markbook.Numeric(7),
					Weight:       markbook.Numeric(1),
					Denominator:  markbook.Numeric(10),
					Date:         "10/16/2026",
					Comment:      &markbook.Comment{Text: "Show your work"},
					UpdatedToday: true,
				},
				{Name: "Quiz 2", Mark: markbook.SentinelMark(markbook.NotHandedIn), Date: "10/15/2026"},
				{Name: "Quiz 3"},
			},
		}},
	}
}

func TestRenderCourse(t *testing.T) {
	out := RenderCourse(sampleCourse())

	for _, want := range []string{"Math 30 (87.5)", "Term 1", "Quiz 1  7/10", "Show your work", "Quiz 2  NHI", "Quiz 3  n/a", "Calculated mark: 70.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "10/16/2026 *") {
		t.Errorf("expected today's assignment to be marked, got:\n%s", out)
	}
	if strings.Contains(out, "10/15/2026 *") {
		t.Errorf("yesterday's assignment should not be marked, got:\n%s", out)
	}
}

func TestRenderCourse_NoTree(t *testing.T) {
	c := markbook.Course{Name: "Band"}
	out := RenderCourse(c)
	if !strings.Contains(out, "Band (n/a)") || !strings.Contains(out, "No markbook available.") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Calculated mark") {
		t.Errorf("courses without a tree should not show a calculated mark")
	}
}

func TestRenderCourses(t *testing.T) {
	rep := &report.Report{
		Courses: []markbook.Course{sampleCourse(), {Name: "Band"}},
		Skipped: []report.SkippedCourse{{Name: "Chemistry 20", Reason: "fetch failed: timeout"}},
	}

	out := RenderCourses(rep)
	for _, want := range []string{"Math 30 *", "MAT3791", "87.5", "Band", "n/a", "Skipped Chemistry 20: fetch failed: timeout"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderGPA(t *testing.T) {
	overall := 77.5
	out := RenderGPA(grades.Summary{
		Overall:  &overall,
		Programs: []grades.ProgramAverage{{Name: "robotics", Average: 85, Courses: 2}},
	})

	for _, want := range []string{"Overall GPA:", "77.50%", "Robotics: 85.00% (2 courses)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Restricted") {
		t.Errorf("restricted GPA should be hidden when unavailable")
	}

	out = RenderGPA(grades.Summary{})
	if !strings.Contains(out, "n/a") {
		t.Errorf("expected unavailable overall GPA to render as n/a, got:\n%s", out)
	}
}

func TestRenderConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Username = "jdoe"

	out := RenderConfig(cfg)
	for _, want := range []string{"Username: jdoe", "Time Zone: America/Denver", "Program programming: 6 courses", "Program robotics: 4 courses"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
