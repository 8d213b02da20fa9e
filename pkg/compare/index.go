package compare

import (
	"strings"

	"github.com/sdejongh/checknorris/pkg/models"
)

// Index maps comparison keys to file records for one side of a run.
// Keys are unique by construction; iteration order is unspecified.
type Index map[string]models.FileRecord

// Key derives the comparison key for a relative path. With
// case-insensitive matching the path is lower-cased, otherwise it is
// used verbatim.
func Key(relativePath string, caseInsensitive bool) string {
	if caseInsensitive {
		return strings.ToLower(relativePath)
	}
	return relativePath
}

// BuildIndex converts a record sequence into an Index. When two records
// fold to the same key the later one silently replaces the earlier
// (last-write-wins); the returned duplicate count is a data-quality
// diagnostic for the caller, never an error.
func BuildIndex(records []models.FileRecord, caseInsensitive bool) (Index, int) {
	idx := make(Index, len(records))
	duplicates := 0

	for _, record := range records {
		key := Key(record.Path, caseInsensitive)
		if _, exists := idx[key]; exists {
			duplicates++
		}
		idx[key] = record
	}

	return idx, duplicates
}
