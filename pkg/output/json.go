package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sdejongh/checknorris/pkg/models"
)

// JSONEmitter writes the full structured report for automation and
// later inspection
type JSONEmitter struct {
	// Path is the output file location
	Path string
}

// NewJSONEmitter creates a JSON report emitter
func NewJSONEmitter(path string) *JSONEmitter {
	return &JSONEmitter{Path: path}
}

// Emit writes the complete report as indented JSON. Absent sizes and
// modtimes serialize as null.
func (e *JSONEmitter) Emit(report *models.VerifyReport) error {
	// Shallow copy so sorting for display never mutates the caller's report
	doc := *report
	doc.MissingOnDst = sortedMissing(report.MissingOnDst)
	doc.Mismatches = sortedMismatches(report.Mismatches)

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}

	if err := os.WriteFile(e.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	return nil
}

// Name returns the emitter name
func (e *JSONEmitter) Name() string {
	return "json"
}
