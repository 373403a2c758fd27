// Package main is the entry point for the gomathdoc CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gomathdoc/internal/cli"
	"github.com/yaklabco/gomathdoc/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrRenderFailures is only a signal for the exit code; the
		// failures themselves were already reported per expression.
		if errors.Is(err, cli.ErrRenderFailures) {
			return cli.ExitRenderFailures
		}

		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return cli.ExitError
	}

	return cli.ExitSuccess
}
