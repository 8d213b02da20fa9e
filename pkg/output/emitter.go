package output

import (
	"sort"
	"strconv"
	"time"

	"github.com/sdejongh/checknorris/pkg/models"
)

// Emitter defines the interface for report emission. Implementations
// are pure consumers of a finished VerifyReport; the comparison core
// never depends on them.
type Emitter interface {
	// Emit persists or renders the report
	Emit(report *models.VerifyReport) error

	// Name returns the emitter name
	Name() string
}

// The reconciler guarantees no ordering on its output lists; emitters
// own whatever sorting their presentation needs.

func sortedMissing(entries []models.MissingEntry) []models.MissingEntry {
	out := make([]models.MissingEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func sortedMismatches(entries []models.MismatchEntry) []models.MismatchEntry {
	out := make([]models.MismatchEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func sortedDirNames(dirs map[string]models.DirectorySummary) []string {
	names := make([]string, 0, len(dirs))
	for name := range dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatEpoch renders fractional epoch seconds without exponent
// notation, empty for absent values
func formatEpoch(ts *float64) string {
	if ts == nil {
		return ""
	}
	return strconv.FormatFloat(*ts, 'f', -1, 64)
}

// formatSize renders a byte count, empty for absent values
func formatSize(size *int64) string {
	if size == nil {
		return ""
	}
	return strconv.FormatInt(*size, 10)
}

// formatEpochUTC renders fractional epoch seconds as a UTC timestamp
// for human-facing output, an em-style dash for absent values
func formatEpochUTC(ts *float64) string {
	if ts == nil {
		return "—"
	}
	sec := int64(*ts)
	nsec := int64((*ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC().Format(time.RFC3339)
}
