package listing

import (
	"bufio"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/sdejongh/checknorris/pkg/models"
)

// lsf --format pst emits one file per line: path, size, modtime,
// tab-separated. Sizes and modtimes may be the "-" sentinel when the
// backend cannot report them.
const (
	lsfFieldCount = 3
	lsfSeparator  = "\t"
)

// parseListing consumes raw lsf output and produces normalized records.
// Malformed lines are skipped, unparseable fields recorded as absent;
// parsing never fails a run.
func parseListing(r io.Reader, excluder *Excluder) ([]models.FileRecord, error) {
	var records []models.FileRecord

	scanner := bufio.NewScanner(r)
	// Deep trees produce long paths; the default token limit is too small
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		record, ok := parseLine(line, excluder)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return records, err
	}

	return records, nil
}

// parseLine normalizes a single lsf line into a FileRecord. The second
// return value is false for malformed or excluded entries.
func parseLine(line string, excluder *Excluder) (models.FileRecord, bool) {
	parts := strings.Split(line, lsfSeparator)
	if len(parts) != lsfFieldCount {
		return models.FileRecord{}, false
	}

	p := normalizePath(parts[0])
	if p == "" {
		return models.FileRecord{}, false
	}

	if excluder.Match(p) {
		return models.FileRecord{}, false
	}

	return models.FileRecord{
		Path:    p,
		Size:    parseSize(parts[1]),
		ModTime: parseModTime(parts[2]),
	}, true
}

// parseSize converts an lsf size field to bytes, nil for the "-"
// sentinel or anything that is not an integer
func parseSize(s string) *int64 {
	if s == "" || s == "-" {
		return nil
	}
	size, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &size
}

// normalizePath cleans a listing path into its canonical relative form:
// forward slashes, no leading "./", original casing preserved
func normalizePath(p string) string {
	p = strings.TrimPrefix(p, "./")
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == "/" {
		return ""
	}
	return strings.TrimPrefix(cleaned, "/")
}
