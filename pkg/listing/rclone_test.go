package listing

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// TestNewRcloneDefaults verifies constructor fallbacks
func TestNewRcloneDefaults(t *testing.T) {
	lister := NewRclone(Options{})

	if lister.binary != "rclone" {
		t.Errorf("binary = %q, want rclone", lister.binary)
	}
	if lister.log == nil {
		t.Error("logger not defaulted")
	}
}

// TestListBinaryNotFound verifies the fatal classification for a
// missing listing tool
func TestListBinaryNotFound(t *testing.T) {
	lister := NewRclone(Options{
		Binary: "rclone-binary-that-does-not-exist-anywhere",
	})

	_, err := lister.List(context.Background(), "remote:")
	if err == nil {
		t.Fatal("List() = nil error for missing binary")
	}
	if !errors.Is(err, ErrRcloneNotFound) {
		t.Errorf("error = %v, want ErrRcloneNotFound", err)
	}
}

// fakeLister writes a shell script that stands in for rclone and returns
// an Rclone pointed at it, with the logger teed into logs
func fakeLister(t *testing.T, script string, logs *bytes.Buffer) *Rclone {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake rclone script requires a POSIX shell")
	}

	binary := filepath.Join(t.TempDir(), "rclone-fake")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("failed to write fake rclone: %v", err)
	}

	log := logrus.New()
	log.SetOutput(logs)
	log.SetLevel(logrus.DebugLevel)

	return NewRclone(Options{Binary: binary, Logger: log})
}

// TestListDegradedExit verifies that a non-zero rclone exit after output
// is downgraded to a warning and the partial listing is kept
func TestListDegradedExit(t *testing.T) {
	var logs bytes.Buffer
	lister := fakeLister(t, `printf 'A/one.txt\t10\t2024-08-09T12:00:00Z\n'
printf 'A/two.txt\t20\t2024-08-09T12:00:01Z\n'
echo boom >&2
exit 3
`, &logs)

	records, err := lister.List(context.Background(), "remote:")
	if err != nil {
		t.Fatalf("List() error = %v, want nil for degraded exit", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Path != "A/one.txt" || records[1].Path != "A/two.txt" {
		t.Errorf("unexpected paths: %q, %q", records[0].Path, records[1].Path)
	}

	out := logs.String()
	if !strings.Contains(out, "returned non-zero") {
		t.Errorf("degraded exit not logged as warning, logs:\n%s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("stderr tail missing from warning, logs:\n%s", out)
	}
}

// TestListCleanExit verifies the normal path returns all records without
// a warning
func TestListCleanExit(t *testing.T) {
	var logs bytes.Buffer
	lister := fakeLister(t, `printf 'B/file.bin\t512\t2024-08-09T12:00:00Z\n'
exit 0
`, &logs)

	records, err := lister.List(context.Background(), "remote:")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if strings.Contains(logs.String(), "returned non-zero") {
		t.Errorf("clean exit logged as degraded, logs:\n%s", logs.String())
	}
}
