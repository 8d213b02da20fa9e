package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sdejongh/checknorris/pkg/models"
)

// IssueTypeMissing tags CSV rows for files absent from the destination
const IssueTypeMissing = "missing_on_box"

// IssueTypeMismatch tags CSV rows for size/modtime mismatches
const IssueTypeMismatch = "mismatch"

// csvHeader is the fixed column set of the tabular report
var csvHeader = []string{
	"issue_type", "path",
	"src_size", "dst_size", "size_equal",
	"src_modtime_epoch", "dst_modtime_epoch",
	"modtime_diff_seconds", "within_tolerance",
}

// CSVEmitter writes every missing and mismatch entry to a tabular file
type CSVEmitter struct {
	// Path is the output file location
	Path string
}

// NewCSVEmitter creates a CSV report emitter
func NewCSVEmitter(path string) *CSVEmitter {
	return &CSVEmitter{Path: path}
}

// Emit writes the report rows, sorted by path within each issue type
func (e *CSVEmitter) Emit(report *models.VerifyReport) error {
	f, err := os.Create(e.Path)
	if err != nil {
		return fmt.Errorf("failed to create CSV report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range sortedMissing(report.MissingOnDst) {
		row := []string{
			IssueTypeMissing, m.Path,
			formatSize(m.Size), "", "",
			formatEpoch(m.ModTime), "", "", "",
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	for _, mm := range sortedMismatches(report.Mismatches) {
		row := []string{
			IssueTypeMismatch, mm.Path,
			formatSize(mm.SrcSize), formatSize(mm.DstSize), strconv.FormatBool(mm.SizeEqual),
			formatEpoch(mm.SrcModTime), formatEpoch(mm.DstModTime),
			formatEpoch(mm.ModTimeDiffSeconds), strconv.FormatBool(mm.WithinTolerance),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV report: %w", err)
	}

	return nil
}

// Name returns the emitter name
func (e *CSVEmitter) Name() string {
	return "csv"
}
