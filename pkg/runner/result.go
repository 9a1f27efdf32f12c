package runner

import (
	"errors"

	"github.com/yaklabco/guardfix/pkg/guard"
	"github.com/yaklabco/guardfix/pkg/pipeline"
)

// FileOutcome pairs a processed path with its pipeline result.
type FileOutcome struct {
	// Path is the file that was processed.
	Path string

	// Result is the pipeline result; nil when Error is set.
	Result *pipeline.Result

	// Error is set when the file could not be processed. Malformed
	// nesting surfaces here, wrapped in pipeline.ErrMalformed, so it
	// stays distinguishable from plain I/O failures.
	Error error
}

// Malformed reports whether this outcome failed on unbalanced
// conditionals.
func (o FileOutcome) Malformed() bool {
	return errors.Is(o.Error, pipeline.ErrMalformed)
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files processed without error.
	FilesProcessed int

	// FilesSkipped counts deliberate skips (language detection,
	// concurrent modification).
	FilesSkipped int

	// FilesErrored counts files that failed, malformed ones included.
	FilesErrored int

	// FilesMalformed counts files whose conditionals never balance.
	FilesMalformed int

	// GuardsFound is the number of files with a located include guard.
	GuardsFound int

	// FilesNoGuard is the number of files with nothing to do.
	FilesNoGuard int

	// FilesRewritable is the number of files whose transform produced
	// new content (pending in report-only mode, applied in write mode).
	FilesRewritable int

	// FilesWritten is the number of files actually rewritten on disk.
	FilesWritten int

	// BackupsCreated is the number of sidecar backups written.
	BackupsCreated int
}

// Result is the overall runner result, ordered deterministically by
// path.
type Result struct {
	Files []FileOutcome
	Stats Stats

	// Errors holds non-file-specific failures.
	Errors []error
}

// HasPendingChanges reports whether any file still needs rewriting.
func (r *Result) HasPendingChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesRewritable > r.Stats.FilesWritten
}

// HasMalformed reports whether any file had unbalanced conditionals.
func (r *Result) HasMalformed() bool {
	return r != nil && r.Stats.FilesMalformed > 0
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		if outcome.Malformed() {
			r.Stats.FilesMalformed++
		}
		return
	}

	pr := outcome.Result
	if pr == nil {
		return
	}

	r.Stats.FilesProcessed++

	if pr.Skipped {
		r.Stats.FilesSkipped++
		return
	}

	switch pr.Status {
	case guard.StatusNoGuard:
		r.Stats.FilesNoGuard++
	case guard.StatusUnchanged:
		r.Stats.GuardsFound++
	case guard.StatusRewritten:
		r.Stats.GuardsFound++
		r.Stats.FilesRewritable++
	}

	if pr.Written {
		r.Stats.FilesWritten++
	}
	if pr.BackupCreated {
		r.Stats.BackupsCreated++
	}
}
