package listing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sdejongh/checknorris/pkg/models"
)

// ErrRcloneNotFound indicates the rclone binary is not available.
// This is the only fatal listing failure; the run aborts without reports.
var ErrRcloneNotFound = errors.New("rclone binary not found")

// Rclone lists remotes by shelling out to "rclone lsf"
type Rclone struct {
	binary     string
	configFile string
	checkers   int
	fastList   bool
	extraArgs  []string
	excluder   *Excluder
	log        *logrus.Logger
}

// Options configures an Rclone lister
type Options struct {
	// Binary is the rclone executable path (default "rclone")
	Binary string
	// ConfigFile is an optional rclone config file path
	ConfigFile string
	// Checkers is the concurrency hint passed to rclone (opaque to the core)
	Checkers int
	// FastList enables rclone's --fast-list mode
	FastList bool
	// ExtraArgs are appended verbatim to every invocation
	ExtraArgs []string
	// Excluder filters entries by basename; nil disables filtering
	Excluder *Excluder
	// Logger receives degraded-run warnings; nil uses the standard logger
	Logger *logrus.Logger
}

// NewRclone creates an rclone-backed lister
func NewRclone(opts Options) *Rclone {
	binary := opts.Binary
	if binary == "" {
		binary = "rclone"
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Rclone{
		binary:     binary,
		configFile: opts.ConfigFile,
		checkers:   opts.Checkers,
		fastList:   opts.FastList,
		extraArgs:  opts.ExtraArgs,
		excluder:   opts.Excluder,
		log:        log,
	}
}

// List enumerates all files under remotePath via "rclone lsf -R".
//
// A missing rclone binary returns ErrRcloneNotFound. A non-zero exit
// after output was produced is logged as a warning and the partial
// listing is returned without error; the run proceeds with whatever was
// captured.
func (r *Rclone) List(ctx context.Context, remotePath string) ([]models.FileRecord, error) {
	args := []string{
		"lsf",
		"-R",
		"--files-only",
		"--format", "pst",
		"--separator", lsfSeparator,
	}
	if r.configFile != "" {
		args = append(args, "--config", r.configFile)
	}
	if r.fastList {
		args = append(args, "--fast-list")
	}
	if r.checkers > 0 {
		args = append(args, "--checkers", strconv.Itoa(r.checkers))
	}
	args = append(args, r.extraArgs...)
	args = append(args, remotePath)

	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to attach to rclone output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		// exec.ErrNotFound covers PATH lookups, fs.ErrNotExist explicit paths
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRcloneNotFound, r.binary)
		}
		return nil, fmt.Errorf("failed to start rclone: %w", err)
	}

	records, parseErr := parseListing(stdout, r.excluder)

	if err := cmd.Wait(); err != nil {
		// lsf can exit non-zero on per-object warnings after emitting a
		// usable listing; proceed with what was captured
		r.log.WithFields(logrus.Fields{
			"remote": remotePath,
			"stderr": strings.TrimSpace(stderr.String()),
		}).Warnf("rclone lsf returned non-zero, continuing with %d records", len(records))
		return records, nil
	}

	if parseErr != nil {
		return records, fmt.Errorf("failed to read rclone output: %w", parseErr)
	}

	r.log.WithFields(logrus.Fields{
		"remote": remotePath,
		"files":  len(records),
	}).Debug("listing complete")

	return records, nil
}
