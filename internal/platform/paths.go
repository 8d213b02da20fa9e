package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinRemote joins an rclone remote root and a subpath without
// introducing double slashes, e.g. ("box:/SAOA", "Projects") ->
// "box:/SAOA/Projects". An empty subpath returns the trimmed root.
func JoinRemote(remote, subpath string) string {
	root := strings.TrimRight(remote, "/")
	sub := strings.TrimLeft(subpath, "/")
	if sub == "" {
		return root
	}
	return root + "/" + sub
}

// EnsureReportDir creates the report output directory if needed
func EnsureReportDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// ReportPath returns the location of a named report artifact inside the
// output directory
func ReportPath(dir, name string) string {
	return filepath.Join(dir, name)
}
