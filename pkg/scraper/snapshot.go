package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"markbookctl/pkg/markbook"
)

// Snapshot represents the disk data format of a saved scrape.
// It stores the raw classified rows so a run can be replayed offline.
type Snapshot struct {
	Timestamp time.Time             `json:"timestamp"`
	Courses   []markbook.CourseRows `json:"courses"`
}

// DefaultSnapshotPath returns ~/.markbookctl_snapshots/latest.json, creating the directory
func DefaultSnapshotPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".markbookctl_snapshots")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("could not create snapshot directory: %w", err)
	}

	return filepath.Join(dir, "latest.json"), nil
}

// ReadSnapshot loads a saved scrape
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	return &snap, nil
}

// WriteSnapshot saves the scraped rows to path
func WriteSnapshot(path string, courses []markbook.CourseRows) error {
	entry := Snapshot{
		Timestamp: time.Now(),
		Courses:   courses,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
