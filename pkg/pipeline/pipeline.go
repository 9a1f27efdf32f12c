// Package pipeline orchestrates the safe processing of a single
// header: read and hash, run the pure guard transform, then diff or
// persist the result under the configured safety checks. The transform
// itself never touches the file system; everything with a side effect
// lives here.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/guardfix/pkg/config"
	"github.com/yaklabco/guardfix/pkg/fix"
	"github.com/yaklabco/guardfix/pkg/fsutil"
	"github.com/yaklabco/guardfix/pkg/guard"
	"github.com/yaklabco/guardfix/pkg/langdetect"
)

// Error categories surfaced per file.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrMalformed indicates the guard's conditionals never balance;
	// the file is left completely untouched and flagged for manual
	// review.
	ErrMalformed = errors.New("malformed conditional nesting")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// Options controls pipeline behavior for a run.
type Options struct {
	// Write enables persisting rewritten content. When false the
	// pipeline is report-only and generates diffs instead.
	Write bool

	// DryRun generates diffs without writing files, even in write mode.
	DryRun bool

	// Backup configures sidecar backups before a write.
	Backup fsutil.BackupConfig

	// DetectLanguage skips headers whose content classifies as a
	// non-C/C++ language.
	DetectLanguage bool

	// StrictRaceDetection re-hashes content when checking for
	// concurrent modification; otherwise only mtime and size are
	// compared.
	StrictRaceDetection bool
}

// OptionsFromConfig derives pipeline options from a resolved config.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{StrictRaceDetection: true}
	}
	return Options{
		Write:               cfg.Write,
		DryRun:              cfg.DryRun,
		Backup:              fsutil.BackupConfig{Enabled: cfg.Backups.Enabled && !cfg.NoBackups},
		DetectLanguage:      cfg.DetectLanguage,
		StrictRaceDetection: true,
	}
}

// Result is the outcome of processing one file.
type Result struct {
	// Path is the file that was processed.
	Path string

	// OriginalInfo is the file state at read time.
	OriginalInfo *fsutil.FileInfo

	// Status is the guard transform outcome.
	Status guard.Status

	// GuardName is the located guard identifier, when any.
	GuardName string

	// Modified is true when the transform produced new content.
	Modified bool

	// ModifiedContent holds the rewritten bytes (nil if unmodified).
	ModifiedContent []byte

	// Diff is the unified diff for report-only and dry-run modes.
	Diff *fix.Diff

	// Skipped is true when the file was deliberately not processed.
	Skipped bool

	// SkipReason explains a skip.
	SkipReason string

	// BackupCreated is true when a sidecar backup was written.
	BackupCreated bool

	// Written is true when the file was rewritten on disk.
	Written bool
}

// Summary returns a short human-readable outcome description.
func (r *Result) Summary() string {
	switch {
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written:
		if r.BackupCreated {
			return "rewritten (backup created)"
		}
		return "rewritten"
	case r.Modified:
		return "needs rewrite"
	case r.Status == guard.StatusNoGuard:
		return "no guard"
	default:
		return "ok"
	}
}

// Pipeline processes headers one file at a time. It is stateless and
// safe for concurrent use across files.
type Pipeline struct{}

// New creates a Pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// ProcessFile runs the full per-file pipeline:
//
//  1. Read and hash the original file.
//  2. Optionally classify the language and skip non-C/C++ headers.
//  3. Run the pure guard transform.
//  4. Generate a diff (report-only or dry-run) or
//  5. check for concurrent modification, back up, and write atomically.
//
// Malformed nesting is returned as an error wrapping ErrMalformed; the
// file is never partially written.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	result := &Result{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.OriginalInfo = info

	if opts.DetectLanguage {
		if lang := langdetect.Detect(path, content); !langdetect.IsConvertible(lang) {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("detected language %s", lang)
			result.Status = guard.StatusNoGuard
			return result, nil
		}
	}

	res, err := guard.Transform(content)
	if err != nil {
		if errors.Is(err, guard.ErrUnbalancedConditionals) {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return nil, err
	}

	result.Status = res.Status
	result.GuardName = res.GuardName

	if res.Status != guard.StatusRewritten {
		return result, nil
	}

	result.Modified = true
	result.ModifiedContent = res.Output

	if !opts.Write || opts.DryRun {
		result.Diff = fix.GenerateDiff(path, content, res.Output)
		return result, nil
	}

	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, res.Output, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent runs the transform and diff stages on in-memory
// content without any file I/O. Useful for tests and embedding.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte, opts Options) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	result := &Result{Path: path}

	if opts.DetectLanguage {
		if lang := langdetect.Detect(path, content); !langdetect.IsConvertible(lang) {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("detected language %s", lang)
			result.Status = guard.StatusNoGuard
			return result, nil
		}
	}

	res, err := guard.Transform(content)
	if err != nil {
		if errors.Is(err, guard.ErrUnbalancedConditionals) {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return nil, err
	}

	result.Status = res.Status
	result.GuardName = res.GuardName

	if res.Status == guard.StatusRewritten {
		result.Modified = true
		result.ModifiedContent = res.Output
		result.Diff = fix.GenerateDiff(path, content, res.Output)
	}

	return result, nil
}

func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	if strict {
		return fsutil.CheckModified(ctx, info)
	}
	return fsutil.CheckModifiedQuick(ctx, info)
}

// categorizeError wraps an error with the matching pipeline category,
// using errors.Is rather than string matching.
func categorizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied), errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
