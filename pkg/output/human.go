package output

import (
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/checknorris/pkg/models"
)

// ConsoleEmitter prints a human-readable run summary to a writer
type ConsoleEmitter struct {
	writer io.Writer
}

// NewConsoleEmitter creates a console summary emitter. A nil writer
// defaults to stdout.
func NewConsoleEmitter(writer io.Writer) *ConsoleEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &ConsoleEmitter{writer: writer}
}

// Emit prints the summary block, per-directory lines, and the verdict
func (e *ConsoleEmitter) Emit(report *models.VerifyReport) error {
	w := e.writer

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Verification completed in %.2fs\n", report.ElapsedSeconds)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Source:                 %s\n", report.SrcRemote)
	fmt.Fprintf(w, "  Destination:            %s\n", report.DstRemote)
	fmt.Fprintf(w, "  Source files:           %d\n", report.Counts.TotalSrcFiles)
	fmt.Fprintf(w, "  Matched:                %d\n", report.Counts.Matched)
	fmt.Fprintf(w, "  Missing on destination: %d\n", report.Counts.MissingOnDst)
	fmt.Fprintf(w, "  Mismatches:             %d\n", report.Counts.Mismatches)
	fmt.Fprintf(w, "  Total size:             %.2f GB\n", report.TotalSizeGB)

	if len(report.Directories) > 0 {
		fmt.Fprintf(w, "\nDirectories:\n")
		for _, name := range sortedDirNames(report.Directories) {
			summary := report.Directories[name]
			glyph := "✓"
			if !summary.AllSynced {
				glyph = "✗"
			}
			display := name
			if display == "" {
				display = "(root)"
			}
			fmt.Fprintf(w, "  %s %-30s %6d files  %3d missing  %3d mismatched  %8.2f GB\n",
				glyph, display, summary.TotalFiles, summary.Missing, summary.Mismatches, summary.SizeGB)
		}
	}

	fmt.Fprintf(w, "\nStatus: %s\n", report.Status)

	return nil
}

// Name returns the emitter name
func (e *ConsoleEmitter) Name() string {
	return "console"
}
