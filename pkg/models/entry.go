package models

// MissingEntry represents a source file with no counterpart on the
// destination. It carries source-side values only.
type MissingEntry struct {
	Path    string   `json:"path"`
	Size    *int64   `json:"size"`
	ModTime *float64 `json:"modtime"`
}

// MismatchEntry represents a file present on both sides that failed the
// size/modtime equality rule
type MismatchEntry struct {
	Path      string `json:"path"`
	SrcSize   *int64 `json:"src_size"`
	DstSize   *int64 `json:"dst_size"`
	SizeEqual bool   `json:"size_equal"`

	SrcModTime *float64 `json:"src_modtime"`
	DstModTime *float64 `json:"dst_modtime"`

	// ModTimeDiffSeconds is the absolute modtime delta, nil when either
	// side's modtime is missing (never computed as zero)
	ModTimeDiffSeconds *float64 `json:"modtime_diff_seconds"`

	WithinTolerance bool `json:"within_tolerance"`
}
