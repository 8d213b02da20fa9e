package models

import (
	"time"
)

// Counts holds the overall reconciliation tallies
type Counts struct {
	TotalSrcFiles int `json:"total_src_files"`
	Matched       int `json:"matched"`
	MissingOnDst  int `json:"missing_on_dst"`
	Mismatches    int `json:"mismatches"`
}

// DirectorySummary summarizes verification results for one top-level
// directory of the source tree
type DirectorySummary struct {
	TotalFiles int     `json:"total_files"`
	Matched    int     `json:"matched"`
	Missing    int     `json:"missing"`
	Mismatches int     `json:"mismatches"`
	SizeBytes  int64   `json:"size_bytes"`
	SizeGB     float64 `json:"size_gb"`
	AllSynced  bool    `json:"all_synced"`
}

// VerifyReport represents the full results of a verification run
type VerifyReport struct {
	RunID          string    `json:"run_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`

	SrcRemote string `json:"src_remote"`
	DstRemote string `json:"dst_remote"`

	// Configuration echoed into the report
	CaseInsensitive         bool     `json:"case_insensitive"`
	ModTimeToleranceSeconds float64  `json:"modtime_tolerance_seconds"`
	Exclusions              []string `json:"exclusions"`
	Dirs                    []string `json:"dirs,omitempty"`

	Counts         Counts  `json:"counts"`
	TotalSizeBytes int64   `json:"total_size_bytes"`
	TotalSizeGB    float64 `json:"total_size_gb"`

	Directories map[string]DirectorySummary `json:"directories"`

	MissingOnDst []MissingEntry  `json:"missing_on_box"`
	Mismatches   []MismatchEntry `json:"mismatches"`

	Status VerifyStatus `json:"status"`
}

// VerifyStatus represents the overall verdict of a run
type VerifyStatus string

const (
	// StatusPass indicates every source file is represented on the destination
	StatusPass VerifyStatus = "pass"
	// StatusFail indicates at least one missing or mismatched file
	StatusFail VerifyStatus = "fail"
)

// DeriveStatus computes the verdict from the overall counts
func DeriveStatus(c Counts) VerifyStatus {
	if c.MissingOnDst == 0 && c.Mismatches == 0 {
		return StatusPass
	}
	return StatusFail
}

// ExitCode returns the process exit code for the verification status.
// Exit code 2 is reserved for fatal errors (listing tool unavailable).
func (s VerifyStatus) ExitCode() int {
	switch s {
	case StatusPass:
		return 0
	case StatusFail:
		return 1
	default:
		return 2
	}
}

// ExitCodeFatal is used when the run aborts before producing a report
const ExitCodeFatal = 2
