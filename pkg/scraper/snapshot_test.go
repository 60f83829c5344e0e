package scraper

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"markbookctl/pkg/markbook"
)

func TestSnapshotReadWrite(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "markbookctl-snapshot-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	path, err := DefaultSnapshotPath()
	if err != nil {
		t.Fatalf("DefaultSnapshotPath failed: %v", err)
	}
	expectedPath := filepath.Join(tempDir, ".markbookctl_snapshots", "latest.json")
	if path != expectedPath {
		t.Errorf("expected snapshot path %s, got %s", expectedPath, path)
	}

	// 1. Read non-existent snapshot
	if _, err := ReadSnapshot(path); err == nil {
		t.Errorf("expected ReadSnapshot to fail for a missing file")
	}

	// 2. Write snapshot
	absences := 2
	courses := []markbook.CourseRows{
		{
			Course: markbook.Course{
				Code:        "MAT3791",
				Name:        "Mathematics 30-1 Pre-AP",
				LastUpdated: "10/16/2026",
				Absences:    &absences,
				Mark:        markbook.Numeric(87.5),
				Active:      true,
				Units:       []markbook.Unit{},
			},
			Rows: []markbook.Row{
				{Name: "Term Mark", Role: markbook.RoleHeader},
				{Name: "Term 1", RawMark: "88", Role: markbook.RoleUnit},
				{Name: "Quiz", RawMark: "EXC", Date: "10/16/2026", Comment: &markbook.Comment{Text: "Sick"}, Role: markbook.RoleAssignment},
			},
		},
		{
			Course:     markbook.Course{Name: "Chemistry 20", Active: true, Units: []markbook.Unit{}},
			FetchError: "unexpected status code 503",
		},
	}

	before := time.Now()
	if err := WriteSnapshot(path, courses); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	// 3. Read existing snapshot
	snap, err := ReadSnapshot(path)
	if err != nil {
		t.Fatalf("ReadSnapshot failed: %v", err)
	}
	if snap.Timestamp.Before(before.Add(-time.Second)) {
		t.Errorf("unexpected snapshot timestamp %v", snap.Timestamp)
	}
	if !reflect.DeepEqual(courses, snap.Courses) {
		t.Errorf("loaded courses do not match written courses.\nGot: %+v\nExpected: %+v", snap.Courses, courses)
	}
}

func TestSnapshotParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{ not json"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := ReadSnapshot(path); err == nil {
		t.Errorf("expected error when reading invalid snapshot")
	}
}
