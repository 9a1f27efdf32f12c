// Package runner provides multi-file orchestration: it discovers
// header files and drives the per-file pipeline across a worker pool.
package runner

import "github.com/yaklabco/guardfix/pkg/config"

// Options controls discovery and processing for a run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir is the base for resolving relative Paths. Empty
	// means the process working directory.
	WorkingDir string

	// Extensions is the set of header extensions (lowercase, with
	// leading dot) considered for processing.
	Extensions []string

	// IncludeGlobs restricts processing to matching paths when set.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are walked.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers (0 = NumCPU).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
