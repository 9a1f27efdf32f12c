package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Run option fields.
	FieldWrite      = "write"
	FieldDryRun     = "dry_run"
	FieldJobs       = "jobs"
	FieldExtensions = "extensions"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldGuardsFound     = "guards_found"
	FieldFilesWritten    = "files_written"
	FieldFilesMalformed  = "files_malformed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
