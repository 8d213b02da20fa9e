package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sdejongh/checknorris/pkg/models"
)

// StatusEmitter writes a minimal pass/fail document suitable for
// automated gating, e.g. a CI check that reads only this file
type StatusEmitter struct {
	// Path is the output file location
	Path string
}

// statusDocument is the gating contract: verdict plus counts, nothing else
type statusDocument struct {
	GeneratedAt    time.Time           `json:"generated_at"`
	ElapsedSeconds float64             `json:"elapsed_seconds"`
	Status         models.VerifyStatus `json:"status"`
	Counts         models.Counts       `json:"counts"`
}

// NewStatusEmitter creates a status document emitter
func NewStatusEmitter(path string) *StatusEmitter {
	return &StatusEmitter{Path: path}
}

// Emit writes the status document
func (e *StatusEmitter) Emit(report *models.VerifyReport) error {
	doc := statusDocument{
		GeneratedAt:    report.GeneratedAt,
		ElapsedSeconds: report.ElapsedSeconds,
		Status:         report.Status,
		Counts:         report.Counts,
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status document: %w", err)
	}

	if err := os.WriteFile(e.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write status document: %w", err)
	}

	return nil
}

// Name returns the emitter name
func (e *StatusEmitter) Name() string {
	return "status"
}
