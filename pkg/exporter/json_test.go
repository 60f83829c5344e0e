package exporter

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"markbookctl/pkg/grades"
	"markbookctl/pkg/report"
)

func TestWriteJSON(t *testing.T) {
	overall := 87.5
	rep := &report.Report{
		GeneratedAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		Courses:     sampleCourses(),
		Skipped:     []report.SkippedCourse{{Name: "Chemistry 20", Reason: "fetch failed: timeout"}},
		GPA:         grades.Summary{Overall: &overall},
	}

	var buf bytes.Buffer
	if err := WriteJSON(rep, &buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	gpa := decoded["gpa"].(map[string]any)
	if gpa["overall"] != 87.5 {
		t.Errorf("expected overall 87.5, got %v", gpa["overall"])
	}
	if _, ok := gpa["restricted"]; ok {
		t.Errorf("restricted figure should be omitted when unavailable")
	}

	courses := decoded["courses"].([]any)
	unit := courses[0].(map[string]any)["units"].([]any)[0].(map[string]any)
	quiz2 := unit["sections"].([]any)[0].(map[string]any)["assignments"].([]any)[1].(map[string]any)
	if quiz2["mark"] != "EXC" {
		t.Errorf("expected sentinel mark to encode as a string, got %v", quiz2["mark"])
	}
	if unit["weight"] != nil {
		t.Errorf("expected absent weight to encode as null, got %v", unit["weight"])
	}
}
