package listing

import (
	"strings"
	"time"
)

// rclone lsf emits modtimes as RFC3339, often with nanosecond fractions
// and a trailing 'Z', e.g. 2024-08-09T12:34:56.123456789Z. Some backends
// report no timestamp at all, which lsf renders as "-".

const (
	layoutLocal     = "2006-01-02T15:04:05"
	layoutLocalFrac = "2006-01-02T15:04:05.999999"
)

// parseModTime converts an lsf timestamp string to fractional seconds
// since the Unix epoch. It returns nil for the "-" sentinel, an empty
// string, or anything unparseable; it never fails the run.
//
// Fractional seconds are truncated to microsecond resolution before
// parsing. A timestamp without an offset is treated as UTC.
func parseModTime(s string) *float64 {
	if s == "" || s == "-" {
		return nil
	}

	s = truncateFraction(s)

	var (
		t   time.Time
		err error
	)
	if hasOffset(s) {
		t, err = time.Parse(time.RFC3339Nano, s)
	} else if strings.Contains(s, ".") {
		t, err = time.ParseInLocation(layoutLocalFrac, s, time.UTC)
	} else {
		t, err = time.ParseInLocation(layoutLocal, s, time.UTC)
	}
	if err != nil {
		return nil
	}

	ts := float64(t.UnixMicro()) / 1e6
	return &ts
}

// truncateFraction caps the fractional-second part at six digits,
// preserving any trailing zone designator
func truncateFraction(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}

	head := s[:dot]
	tail := s[dot+1:]

	// The fraction runs until the zone designator ('Z', '+' or '-')
	end := len(tail)
	for i := 0; i < len(tail); i++ {
		if c := tail[i]; c == 'Z' || c == '+' || c == '-' {
			end = i
			break
		}
	}

	frac := tail[:end]
	zone := tail[end:]
	if len(frac) > 6 {
		frac = frac[:6]
	}
	if frac == "" {
		return head + zone
	}

	return head + "." + frac + zone
}

// hasOffset reports whether the timestamp carries an explicit zone
// ('Z' suffix or a +hh:mm / -hh:mm offset after the time part)
func hasOffset(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	// Look for '+' or '-' after the 'T'; date dashes sit before it
	t := strings.IndexByte(s, 'T')
	if t < 0 {
		return false
	}
	return strings.ContainsAny(s[t:], "+-")
}
