package cli

import "github.com/yaklabco/gomathdoc/pkg/runner"

// Exit codes for gomathdoc.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates the run itself failed (I/O, config, usage).
	ExitError = 1

	// ExitRenderFailures indicates the run completed but one or more
	// expressions could not be rendered.
	ExitRenderFailures = 2

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
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 || len(result.Errors) > 0 {
		return ExitError
	}

	if result.Stats.ExpressionsFailed > 0 {
		return ExitRenderFailures
	}

	return ExitSuccess
}
