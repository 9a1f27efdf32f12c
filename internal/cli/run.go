package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/guardfix/internal/configloader"
	"github.com/yaklabco/guardfix/internal/logging"
	"github.com/yaklabco/guardfix/pkg/config"
	"github.com/yaklabco/guardfix/pkg/pipeline"
	"github.com/yaklabco/guardfix/pkg/reporter"
	"github.com/yaklabco/guardfix/pkg/runner"
)

// Sentinel errors that carry an exit code out of Execute without
// being logged as failures.
var (
	// ErrChangesNeeded signals that headers still carry classic
	// include guards.
	ErrChangesNeeded = errors.New("include guards need rewriting")

	// ErrMalformedHeaders signals that at least one header had
	// unbalanced conditional directives.
	ErrMalformedHeaders = errors.New("malformed headers found")

	// ErrConfig signals a configuration loading or validation failure.
	ErrConfig = errors.New("configuration error")

	// ErrIO signals a file discovery or I/O failure.
	ErrIO = errors.New("i/o error")
)

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrMalformedHeaders):
		return ExitMalformed
	case errors.Is(err, ErrChangesNeeded):
		return ExitChangesNeeded
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// runFlags holds the flags shared by check and fix.
type runFlags struct {
	format        string
	extensions    []string
	ignore        []string
	showUnchanged bool
}

func addRunFlags(cmd *cobra.Command, cfg *config.Config, flags *runFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, diff, json")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil, "header extensions to process")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = one per CPU)")
	cmd.Flags().BoolVar(&cfg.DetectLanguage, "detect-language", false,
		"skip headers whose content is not C or C++")
	cmd.Flags().BoolVar(&flags.showUnchanged, "show-unchanged", false,
		"also report files that need no changes")
}

// runGuardfix loads configuration, runs the pipeline over the given
// paths, and reports results. It is shared by check and fix.
func runGuardfix(cmd *cobra.Command, args []string, cfg *config.Config, flags *runFlags) error {
	logger := logging.Default()

	cfg.Format = config.OutputFormat(flags.format)
	cfg.Extensions = flags.extensions
	cfg.Ignore = flags.ignore

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: get working directory: %v", ErrIO, err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	finalCfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldWrite, finalCfg.Write,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldExtensions, finalCfg.Extensions,
	)

	fixRunner := runner.New(pipeline.New())

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.Extensions,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := fixRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldGuardsFound, result.Stats.GuardsFound,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldFilesMalformed, result.Stats.FilesMalformed,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:        cmd.OutOrStdout(),
		ErrorWriter:   cmd.ErrOrStderr(),
		Format:        format,
		Color:         colorMode,
		ShowUnchanged: flags.showUnchanged,
		ShowSummary:   true,
		WorkingDir:    workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result) {
	case ExitMalformed:
		return ErrMalformedHeaders
	case ExitChangesNeeded:
		return ErrChangesNeeded
	default:
		return nil
	}
}
