// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldKind       = "kind"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldWrite  = "write"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"

	// Expression fields.
	FieldExpression = "expression"
	FieldDisplay    = "display"
	FieldState      = "state"
	FieldOffset     = "offset"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldFound           = "found"
	FieldRendered        = "rendered"
	FieldFailed          = "failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
