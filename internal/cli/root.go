// Package cli provides the Cobra command structure for gomathdoc.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomathdoc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomathdoc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gomathdoc",
		Short: "Render TeX math in plain-text documents to Unicode",
		Long: `gomathdoc finds delimited TeX math in Markdown, TeX, and plain-text
files and renders each expression to Unicode text, splicing the result back
into the document in place.

Every expression moves through a compile, typeset, insert pipeline with
per-expression error isolation: a failed expression leaves its source text
untouched while the rest of the document still renders. Writes are atomic,
race-checked, and optionally backed by sidecar files for restore.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
