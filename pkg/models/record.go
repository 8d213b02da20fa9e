package models

// FileRecord is a single file from a remote listing, keyed by its path
// relative to the listing root.
//
// Size and ModTime are pointers because rclone reports some entries
// without metadata (sentinel values in the listing). A nil field means
// the value is absent, which is distinct from zero.
type FileRecord struct {
	// Path is the slash-separated path relative to the listing root
	Path string
	// Size is the file size in bytes, nil when not reported
	Size *int64
	// ModTime is the modification time as fractional epoch seconds in
	// UTC with microsecond precision, nil when not reported
	ModTime *float64
}
