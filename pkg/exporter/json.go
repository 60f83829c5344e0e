package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"markbookctl/pkg/report"
)

// WriteJSON writes the full report, trees and GPA figures included, as indented JSON
func WriteJSON(rep *report.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
