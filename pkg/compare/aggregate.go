package compare

import (
	"strings"

	"github.com/sdejongh/checknorris/pkg/models"
)

// bytesPerGB uses the decimal definition: 1 GB = 10^9 bytes
const bytesPerGB = 1e9

// Aggregate groups the source index by top-level directory and folds in
// reconciliation tallies, producing one DirectorySummary per group.
//
// When allowList is non-empty, only the listed top-level directories get
// a summary; everything else is excluded from aggregation. Global counts
// are computed over the full source index elsewhere, so an active
// allow-list narrows the per-directory drill-down only. Missing and
// mismatch entries whose top-level segment has no group are silently
// dropped from the tallies.
//
// Per-group matched counts are derived as total - missing - mismatches;
// the subtraction is exact because the reconciler assigns each file to
// exactly one outcome. Destination-only top-level directories never
// appear: groups come from source records alone.
func Aggregate(src Index, result Result, allowList []string) map[string]models.DirectorySummary {
	var allowed map[string]bool
	if len(allowList) > 0 {
		allowed = make(map[string]bool, len(allowList))
		for _, dir := range allowList {
			allowed[dir] = true
		}
	}

	type tally struct {
		totalFiles int
		missing    int
		mismatches int
		sizeBytes  int64
	}
	groups := make(map[string]*tally)

	group := func(segment string) *tally {
		if allowed != nil && !allowed[segment] {
			return nil
		}
		g, ok := groups[segment]
		if !ok {
			g = &tally{}
			groups[segment] = g
		}
		return g
	}

	for _, record := range src {
		g := group(topSegment(record.Path))
		if g == nil {
			continue
		}
		g.totalFiles++
		if record.Size != nil {
			g.sizeBytes += *record.Size
		}
	}

	for _, entry := range result.Missing {
		segment := topSegment(entry.Path)
		if g, ok := groups[segment]; ok {
			g.missing++
		}
	}
	for _, entry := range result.Mismatches {
		segment := topSegment(entry.Path)
		if g, ok := groups[segment]; ok {
			g.mismatches++
		}
	}

	summaries := make(map[string]models.DirectorySummary, len(groups))
	for segment, g := range groups {
		summaries[segment] = models.DirectorySummary{
			TotalFiles: g.totalFiles,
			Matched:    g.totalFiles - g.missing - g.mismatches,
			Missing:    g.missing,
			Mismatches: g.mismatches,
			SizeBytes:  g.sizeBytes,
			SizeGB:     float64(g.sizeBytes) / bytesPerGB,
			AllSynced:  g.missing == 0 && g.mismatches == 0,
		}
	}

	return summaries
}

// topSegment returns the first path component of a relative path.
// Files at the listing root fall into the "" group.
func topSegment(relativePath string) string {
	if dir, _, found := strings.Cut(relativePath, "/"); found {
		return dir
	}
	return ""
}
