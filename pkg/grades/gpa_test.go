package grades

import (
	"errors"
	"math"
	"testing"

	"markbookctl/pkg/markbook"
)

var testGroups = []ProgramGroup{
	{Name: "programming", Courses: []string{"Computer Science 2", "Iterative Algorithms 1"}},
	{Name: "robotics", Courses: []string{"CAD1", "Introductory Robotics"}},
}

func course(name string, mark markbook.Mark) markbook.Course {
	return markbook.Course{Name: name, Mark: mark, Active: !mark.IsAbsent()}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestOverall_ProgramPreAveraging(t *testing.T) {
	courses := []markbook.Course{
		course("CAD1", markbook.Numeric(80)),
		course("Introductory Robotics", markbook.Numeric(90)),
		course("Chemistry 20", markbook.Numeric(70)),
	}

	gpa, err := Overall(courses, testGroups)
	if err != nil {
		t.Fatalf("Overall failed: %v", err)
	}
	if !approx(gpa, 77.5) {
		t.Errorf("expected mean(mean(80, 90), 70) = 77.5, got %v", gpa)
	}
}

func TestOverall_OrderIndependent(t *testing.T) {
	a := []markbook.Course{
		course("Computer Science 2", markbook.Numeric(91)),
		course("Iterative Algorithms 1", markbook.Numeric(64)),
		course("Physics 20 AP", markbook.Numeric(77)),
		course("CAD1", markbook.Numeric(88)),
	}
	b := []markbook.Course{a[3], a[1], a[2], a[0]}

	ga, errA := Overall(a, testGroups)
	gb, errB := Overall(b, testGroups)
	if errA != nil || errB != nil {
		t.Fatalf("Overall failed: %v / %v", errA, errB)
	}
	if !approx(ga, gb) {
		t.Errorf("GPA depends on course order: %v vs %v", ga, gb)
	}
}

func TestOverall_IgnoresNonNumericMarks(t *testing.T) {
	courses := []markbook.Course{
		course("Chemistry 20", markbook.Numeric(60)),
		course("Physics 20 AP", markbook.SentinelMark(markbook.Excused)),
		course("GH 20", markbook.Mark{}),
		course("CAD1", markbook.Numeric(0)),
	}

	gpa, err := Overall(courses, testGroups)
	if err != nil {
		t.Fatalf("Overall failed: %v", err)
	}
	if !approx(gpa, 30) {
		t.Errorf("expected mean(60, 0) = 30, got %v", gpa)
	}
}

func TestOverall_NoMarks(t *testing.T) {
	_, err := Overall([]markbook.Course{course("GH 20", markbook.Mark{})}, testGroups)
	if !errors.Is(err, ErrNoMarksAvailable) {
		t.Errorf("expected ErrNoMarksAvailable, got %v", err)
	}
}

func TestProgramAverages(t *testing.T) {
	courses := []markbook.Course{
		course("Computer Science 2", markbook.Numeric(90)),
		course("Iterative Algorithms 1", markbook.Numeric(70)),
		course("Chemistry 20", markbook.Numeric(50)),
	}

	avgs := ProgramAverages(courses, testGroups)
	if len(avgs) != 1 {
		t.Fatalf("expected only the programming group to be averaged, got %+v", avgs)
	}
	if avgs[0].Name != "programming" || avgs[0].Courses != 2 || !approx(avgs[0].Average, 80) {
		t.Errorf("unexpected program average: %+v", avgs[0])
	}
}

func TestRestricted(t *testing.T) {
	courses := []markbook.Course{
		course("Chemistry 20", markbook.Numeric(60)),
		course("Physics 20 AP", markbook.Numeric(90)),
		course("CAD1", markbook.Numeric(100)),
	}

	gpa, err := Restricted(courses, []string{"Chemistry 20", "Physics 20 AP"})
	if err != nil {
		t.Fatalf("Restricted failed: %v", err)
	}
	if !approx(gpa, 75) {
		t.Errorf("expected 75, got %v", gpa)
	}

	_, err = Restricted(courses, []string{"Latin"})
	if !errors.Is(err, ErrNoMarksAvailable) {
		t.Errorf("expected ErrNoMarksAvailable, got %v", err)
	}
}
