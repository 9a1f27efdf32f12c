package cli

import "github.com/yaklabco/guardfix/pkg/runner"

// Exit codes for guardfix.
const (
	// ExitSuccess indicates successful execution with nothing to do.
	ExitSuccess = 0

	// ExitChangesNeeded indicates headers still carry classic include
	// guards (check mode) or rewriting was requested but incomplete.
	ExitChangesNeeded = 1

	// ExitMalformed indicates at least one header had unbalanced
	// conditional directives and could not be processed.
	ExitMalformed = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a run result.
// Malformed headers dominate pending rewrites.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasMalformed() {
		return ExitMalformed
	}
	if result.HasPendingChanges() {
		return ExitChangesNeeded
	}
	return ExitSuccess
}
