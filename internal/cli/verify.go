package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sdejongh/checknorris/internal/platform"
	"github.com/sdejongh/checknorris/pkg/compare"
	"github.com/sdejongh/checknorris/pkg/config"
	"github.com/sdejongh/checknorris/pkg/listing"
	"github.com/sdejongh/checknorris/pkg/logging"
	"github.com/sdejongh/checknorris/pkg/models"
	"github.com/sdejongh/checknorris/pkg/output"
)

// VerifyFlags holds verify command flags
type VerifyFlags struct {
	Source        string
	Dest          string
	Dirs          []string
	CaseSensitive bool
	Tolerance     float64
	Checkers      int
	NoFastList    bool
	Exclude       []string
	OutputDir     string
	Formats       []string
	// Logging flags
	LogFile  string
	LogLevel string
}

var verifyFlags VerifyFlags

// NewVerifyCommand creates the verify command
func NewVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that a destination mirrors a source",
		Long: `Verify that a prior bulk copy completed correctly by reconciling the
source and destination file listings on relative path, size, and
modification time. Listings are produced by rclone; divergences are
written to CSV, JSON, HTML, and status report files.

Exit codes: 0 = all files represented, 1 = divergences found,
2 = fatal error (rclone unavailable).`,
		RunE: runVerify,
	}

	// Required flags
	cmd.Flags().StringVarP(&verifyFlags.Source, "source", "s", "", "source remote, e.g. \"dropbox:\" (required)")
	cmd.Flags().StringVarP(&verifyFlags.Dest, "dest", "d", "", "destination remote, e.g. \"box:/SAOA\" (required)")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("dest")

	// Optional flags
	cmd.Flags().StringSliceVar(&verifyFlags.Dirs, "dirs", []string{}, "restrict per-directory summaries to these top-level directories")
	cmd.Flags().BoolVar(&verifyFlags.CaseSensitive, "case-sensitive", false, "match paths case-sensitively")
	cmd.Flags().Float64VarP(&verifyFlags.Tolerance, "tolerance", "t", compare.DefaultToleranceSeconds, "modtime tolerance in seconds")
	cmd.Flags().IntVar(&verifyFlags.Checkers, "checkers", 0, "rclone checkers concurrency hint (default: 16)")
	cmd.Flags().BoolVar(&verifyFlags.NoFastList, "no-fast-list", false, "disable rclone --fast-list")
	cmd.Flags().StringSliceVar(&verifyFlags.Exclude, "exclude", []string{}, "basename glob patterns to exclude")
	cmd.Flags().StringVarP(&verifyFlags.OutputDir, "output-dir", "o", "", "report output directory (default: ./reports)")
	cmd.Flags().StringSliceVar(&verifyFlags.Formats, "format", []string{}, "report formats: csv, json, html, status")

	// Logging flags
	cmd.Flags().StringVar(&verifyFlags.LogFile, "log-file", "", "write logs to file as well as the console")
	cmd.Flags().StringVar(&verifyFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate flags
	if err := validateVerifyFlags(); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}

	if err := platform.EnsureReportDir(cfg.Output.Dir); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	started := time.Now()
	generatedAt := started.UTC()

	lister := listing.NewRclone(listing.Options{
		Binary:     cfg.Rclone.Binary,
		ConfigFile: cfg.Rclone.ConfigFile,
		Checkers:   cfg.Rclone.Checkers,
		FastList:   cfg.Rclone.FastList,
		ExtraArgs:  cfg.Rclone.ExtraArgs,
		Excluder:   listing.NewExcluder(cfg.Exclude),
		Logger:     log,
	})

	srcRemote := platform.JoinRemote(cfg.Remotes.Source, "")
	dstRemote := platform.JoinRemote(cfg.Remotes.Dest, "")

	log.WithField("remote", srcRemote).Info("listing source")
	srcRecords, err := lister.List(ctx, srcRemote)
	if err != nil {
		return listingError(log, err)
	}

	log.WithField("remote", dstRemote).Info("listing destination")
	dstRecords, err := lister.List(ctx, dstRemote)
	if err != nil {
		return listingError(log, err)
	}

	caseInsensitive := cfg.Compare.CaseInsensitive

	srcIdx, srcDups := compare.BuildIndex(srcRecords, caseInsensitive)
	dstIdx, dstDups := compare.BuildIndex(dstRecords, caseInsensitive)
	if srcDups > 0 || dstDups > 0 {
		log.WithFields(logrus.Fields{
			"source_duplicates": srcDups,
			"dest_duplicates":   dstDups,
		}).Debug("duplicate comparison keys collapsed (last record wins)")
	}

	result := compare.Reconcile(srcIdx, dstIdx, cfg.Compare.ModTimeToleranceSeconds)
	directories := compare.Aggregate(srcIdx, result, cfg.Compare.Dirs)

	var totalBytes int64
	for _, record := range srcIdx {
		if record.Size != nil {
			totalBytes += *record.Size
		}
	}

	counts := models.Counts{
		TotalSrcFiles: len(srcIdx),
		Matched:       result.Matched,
		MissingOnDst:  len(result.Missing),
		Mismatches:    len(result.Mismatches),
	}

	report := &models.VerifyReport{
		RunID:                   uuid.New().String(),
		GeneratedAt:             generatedAt,
		ElapsedSeconds:          time.Since(started).Seconds(),
		SrcRemote:               cfg.Remotes.Source,
		DstRemote:               cfg.Remotes.Dest,
		CaseInsensitive:         caseInsensitive,
		ModTimeToleranceSeconds: cfg.Compare.ModTimeToleranceSeconds,
		Exclusions:              cfg.Exclude,
		Dirs:                    cfg.Compare.Dirs,
		Counts:                  counts,
		TotalSizeBytes:          totalBytes,
		TotalSizeGB:             float64(totalBytes) / 1e9,
		Directories:             directories,
		MissingOnDst:            result.Missing,
		Mismatches:              result.Mismatches,
		Status:                  models.DeriveStatus(counts),
	}

	if err := emitReports(cfg, report); err != nil {
		return err
	}

	if !cfg.Output.Quiet && !globalFlags.Quiet {
		console := output.NewConsoleEmitter(os.Stdout)
		if err := console.Emit(report); err != nil {
			return err
		}
	}

	// Exit with appropriate code
	os.Exit(report.Status.ExitCode())
	return nil
}

// emitReports runs the configured report emitters
func emitReports(cfg *config.Config, report *models.VerifyReport) error {
	for _, format := range cfg.Output.Formats {
		var emitter output.Emitter
		var path string

		switch format {
		case "csv":
			path = platform.ReportPath(cfg.Output.Dir, "report.csv")
			emitter = output.NewCSVEmitter(path)
		case "json":
			path = platform.ReportPath(cfg.Output.Dir, "report.json")
			emitter = output.NewJSONEmitter(path)
		case "html":
			path = platform.ReportPath(cfg.Output.Dir, "report.html")
			emitter = output.NewHTMLEmitter(path)
		case "status":
			path = platform.ReportPath(cfg.Output.Dir, "status.json")
			emitter = output.NewStatusEmitter(path)
		default:
			return fmt.Errorf("unsupported report format: %s (use: csv, json, html, status)", format)
		}

		if err := emitter.Emit(report); err != nil {
			return fmt.Errorf("failed to emit %s report: %w", format, err)
		}

		if !cfg.Output.Quiet && !globalFlags.Quiet {
			fmt.Printf("Wrote %s\n", path)
		}
	}

	return nil
}

// listingError handles fatal listing failures. A missing rclone binary
// aborts the whole run with a distinct exit status and no reports.
func listingError(log *logrus.Logger, err error) error {
	if errors.Is(err, listing.ErrRcloneNotFound) {
		log.Errorf("%v", err)
		os.Exit(models.ExitCodeFatal)
	}
	return err
}
