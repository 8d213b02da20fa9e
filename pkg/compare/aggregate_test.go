package compare

import (
	"testing"

	"github.com/sdejongh/checknorris/pkg/models"
)

// TestAggregate verifies grouping, tallies, and derived fields
func TestAggregate(t *testing.T) {
	src := index(true,
		record("A/1.txt", 100, 1000),
		record("A/sub/2.txt", 400, 1000),
		record("B/3.txt", 50, 1000),
		record("root.txt", 25, 1000),
	)
	result := Result{
		Missing: []models.MissingEntry{
			{Path: "A/1.txt", Size: intp(100), ModTime: floatp(1000)},
		},
		Mismatches: []models.MismatchEntry{
			{Path: "B/3.txt", SrcSize: intp(50), DstSize: intp(99)},
		},
		Matched: 2,
	}

	summaries := Aggregate(src, result, nil)

	if len(summaries) != 3 {
		t.Fatalf("len(summaries) = %d, want 3 (A, B, root)", len(summaries))
	}

	a := summaries["A"]
	if a.TotalFiles != 2 || a.Missing != 1 || a.Mismatches != 0 || a.Matched != 1 {
		t.Errorf("A = %+v, want total=2 missing=1 mismatches=0 matched=1", a)
	}
	if a.SizeBytes != 500 {
		t.Errorf("A.SizeBytes = %d, want 500", a.SizeBytes)
	}
	if a.AllSynced {
		t.Error("A.AllSynced = true, want false")
	}

	b := summaries["B"]
	if b.TotalFiles != 1 || b.Mismatches != 1 || b.Matched != 0 {
		t.Errorf("B = %+v, want total=1 mismatches=1 matched=0", b)
	}

	root := summaries[""]
	if root.TotalFiles != 1 || root.Matched != 1 || !root.AllSynced {
		t.Errorf("root group = %+v, want total=1 matched=1 all_synced", root)
	}
}

// TestAggregateAllowList verifies that an allow-list narrows the
// per-directory drill-down only: out-of-scope entries get no group and
// their tallies are silently dropped
func TestAggregateAllowList(t *testing.T) {
	src := index(true,
		record("A/1.txt", 100, 1000),
		record("B/2.txt", 50, 1000),
	)
	result := Result{
		Missing: []models.MissingEntry{
			{Path: "A/1.txt", Size: intp(100), ModTime: floatp(1000)},
		},
		Matched: 1,
	}

	summaries := Aggregate(src, result, []string{"B"})

	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1 (only B)", len(summaries))
	}
	if _, ok := summaries["A"]; ok {
		t.Error("excluded directory A has a summary")
	}

	b, ok := summaries["B"]
	if !ok {
		t.Fatal("allow-listed directory B has no summary")
	}
	if b.TotalFiles != 1 || b.Missing != 0 || !b.AllSynced {
		t.Errorf("B = %+v, want total=1 missing=0 all_synced", b)
	}

	// The dropped A missing entry must not leak into B
	if b.Missing != 0 || b.Mismatches != 0 {
		t.Errorf("out-of-scope tallies leaked into B: %+v", b)
	}
}

// TestAggregateSizeGB verifies the decimal gigabyte conversion
func TestAggregateSizeGB(t *testing.T) {
	src := index(true, record("A/big.bin", 2_500_000_000, 1000))

	summaries := Aggregate(src, Result{Matched: 1}, nil)

	a := summaries["A"]
	if a.SizeGB != 2.5 {
		t.Errorf("SizeGB = %g, want 2.5 (1 GB = 10^9 bytes)", a.SizeGB)
	}
}

// TestAggregateAbsentSizes verifies absent sizes contribute nothing to
// byte totals but still count as files
func TestAggregateAbsentSizes(t *testing.T) {
	src := index(true,
		models.FileRecord{Path: "A/unknown.bin", ModTime: floatp(1000)},
		record("A/known.bin", 100, 1000),
	)

	summaries := Aggregate(src, Result{Matched: 2}, nil)

	a := summaries["A"]
	if a.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", a.TotalFiles)
	}
	if a.SizeBytes != 100 {
		t.Errorf("SizeBytes = %d, want 100", a.SizeBytes)
	}
}

// TestTopSegment verifies top-level segment extraction
func TestTopSegment(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"A/1.txt", "A"},
		{"A/sub/deep/file.txt", "A"},
		{"root.txt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := topSegment(tt.path); got != tt.expected {
				t.Errorf("topSegment(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
