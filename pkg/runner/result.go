package runner

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// May be nil if the file encountered an error during processing.
	Result *PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesSkipped is the number of files skipped (non-renderable kind,
	// or modified during processing).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesModified is the number of files whose rendered content differs
	// from the original.
	FilesModified int

	// FilesWritten is the number of files rewritten on disk.
	FilesWritten int

	// ExpressionsFound is the total number of math expressions located.
	ExpressionsFound int

	// ExpressionsRendered is the number of expressions rendered and
	// placed back into their documents.
	ExpressionsRendered int

	// ExpressionsFailed is the number of expressions that could not be
	// rendered.
	ExpressionsFailed int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// HasFailures reports whether any expression failed to render or any
// file errored.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.ExpressionsFailed > 0 || r.Stats.FilesErrored > 0
}

// HasChanges reports whether any file's content changed.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesModified > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Result.Skipped {
		r.Stats.FilesSkipped++
	}

	if outcome.Result.Modified {
		r.Stats.FilesModified++
	}

	if outcome.Result.Written {
		r.Stats.FilesWritten++
	}

	if render := outcome.Result.Render; render != nil {
		r.Stats.ExpressionsFound += render.Found
		r.Stats.ExpressionsRendered += render.Rendered
		r.Stats.ExpressionsFailed += render.Failed
	}
}
