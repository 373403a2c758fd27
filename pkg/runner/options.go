// Package runner provides multi-file rendering orchestration: discovery,
// a worker pool, and the per-file safety pipeline.
package runner

import "github.com/yaklabco/gomathdoc/pkg/config"

// Options controls multi-file rendering behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered candidate documents. Defaults to
	// DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include everything that matches
	// Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default candidate file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".tex", ".txt"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) > 0 {
		return o.Extensions
	}
	if o.Config != nil && len(o.Config.Scan.Extensions) > 0 {
		return o.Config.Scan.Extensions
	}
	return DefaultExtensions()
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
