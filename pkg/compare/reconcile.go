package compare

import (
	"math"

	"github.com/sdejongh/checknorris/pkg/models"
)

// DefaultToleranceSeconds is the default modtime tolerance
const DefaultToleranceSeconds = 120

// Result holds the outcome of reconciling a source index against a
// destination index. Every source key lands in exactly one of the three
// buckets: Matched + len(Missing) + len(Mismatches) == len(source index).
type Result struct {
	// Missing lists source files absent from the destination
	Missing []models.MissingEntry

	// Mismatches lists files present on both sides that failed the
	// size/modtime equality rule
	Mismatches []models.MismatchEntry

	// Matched counts files that passed the equality rule
	Matched int
}

// Reconcile compares every source entry against the destination index.
//
// Destination-only keys are never surfaced; the question answered is
// "is everything in source represented in destination", not the reverse.
// The output lists carry no ordering guarantee; report emitters sort
// for display.
func Reconcile(src, dst Index, toleranceSeconds float64) Result {
	var result Result

	for key, srcRecord := range src {
		dstRecord, found := dst[key]
		if !found {
			result.Missing = append(result.Missing, models.MissingEntry{
				Path:    srcRecord.Path,
				Size:    srcRecord.Size,
				ModTime: srcRecord.ModTime,
			})
			continue
		}

		sizeEqual := sizesEqual(srcRecord.Size, dstRecord.Size)

		// A missing modtime on either side can never match, even with
		// equal sizes; the delta stays undefined rather than zero
		var diff *float64
		withinTolerance := false
		if srcRecord.ModTime != nil && dstRecord.ModTime != nil {
			d := math.Abs(*dstRecord.ModTime - *srcRecord.ModTime)
			diff = &d
			withinTolerance = d <= toleranceSeconds
		}

		if sizeEqual && withinTolerance {
			result.Matched++
			continue
		}

		result.Mismatches = append(result.Mismatches, models.MismatchEntry{
			Path:               srcRecord.Path,
			SrcSize:            srcRecord.Size,
			DstSize:            dstRecord.Size,
			SizeEqual:          sizeEqual,
			SrcModTime:         srcRecord.ModTime,
			DstModTime:         dstRecord.ModTime,
			ModTimeDiffSeconds: diff,
			WithinTolerance:    withinTolerance,
		})
	}

	return result
}

// sizesEqual applies strict value equality: absent equals absent,
// absent never equals a known size
func sizesEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
