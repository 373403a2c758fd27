// Package config defines the configuration types for gomathdoc.
// These are pure data structures; loading and discovery live in loader.go.
package config

import (
	"fmt"

	"github.com/yaklabco/gomathdoc/pkg/find"
	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

// Display mode names accepted in configuration files.
const (
	DisplayInline = "inline"
	DisplayBlock  = "block"
	DisplayAuto   = "auto"
)

// ParseDisplay maps a configured display mode name to the item display
// mode. Empty and "auto" mean the mode cannot be inferred from the
// delimiter pair.
func ParseDisplay(s string) (mathitem.Display, error) {
	switch s {
	case DisplayInline:
		return mathitem.DisplayInline, nil
	case DisplayBlock:
		return mathitem.DisplayBlock, nil
	case "", DisplayAuto:
		return mathitem.DisplayUnresolved, nil
	default:
		return mathitem.DisplayUnresolved, fmt.Errorf("unknown display mode %q", s)
	}
}

// DelimiterConfig is one configured open/close delimiter pair.
type DelimiterConfig struct {
	Open    string `yaml:"open"`
	Close   string `yaml:"close"`
	Display string `yaml:"display"` // "inline", "block", or "auto"
}

// RendererConfig holds output-stage options.
type RendererConfig struct {
	// ErrorIndicator replaces expressions that fail to render. Empty
	// leaves the source text in place.
	ErrorIndicator string `yaml:"error_indicator"`

	// Width overrides the detected container width in cells. 0 means
	// detect from the terminal, or 80 when there is none.
	Width int `yaml:"width"`
}

// ScanConfig controls which files and regions are scanned.
type ScanConfig struct {
	// Extensions are the file extensions considered for rendering.
	Extensions []string `yaml:"extensions"`

	// CodeBlocks scans inside Markdown code regions when true. Off by
	// default: a dollar sign in code is almost never math.
	CodeBlocks bool `yaml:"code_blocks"`
}

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for gomathdoc.
type Config struct {
	// Delimiters are the math delimiter pairs to scan for. Empty means
	// the standard TeX pairs.
	Delimiters []DelimiterConfig `yaml:"delimiters"`

	// Renderer configures the output stage.
	Renderer RendererConfig `yaml:"renderer"`

	// Scan controls file and region selection.
	Scan ScanConfig `yaml:"scan"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Backups configures backups of rewritten files.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place. Without it the run is a report.
	Write bool `yaml:"-"`

	// DryRun shows the diff of what would be written without writing.
	DryRun bool `yaml:"-"`

	// Restore puts files back from their backups instead of rendering.
	Restore bool `yaml:"-"`

	// Jobs is the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with the defaults.
func NewConfig() *Config {
	return &Config{
		Delimiters: nil, // standard pairs
		Renderer:   RendererConfig{},
		Scan: ScanConfig{
			Extensions: []string{".md", ".markdown", ".tex", ".txt"},
			CodeBlocks: false,
		},
		Ignore: nil,
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Jobs: 0,
	}
}

// FindDelimiters converts the configured pairs to scanner delimiters.
// With no pairs configured the standard set is returned.
func (c *Config) FindDelimiters() ([]find.Delimiters, error) {
	if len(c.Delimiters) == 0 {
		return find.DefaultDelimiters(), nil
	}

	delims := make([]find.Delimiters, 0, len(c.Delimiters))
	for _, d := range c.Delimiters {
		display, err := ParseDisplay(d.Display)
		if err != nil {
			return nil, fmt.Errorf("delimiter %q: %w", d.Open, err)
		}
		delims = append(delims, find.Delimiters{
			Open:    d.Open,
			Close:   d.Close,
			Display: display,
		})
	}
	return delims, nil
}

// Validate checks the configuration for contradictions and bad values.
func (c *Config) Validate() error {
	for i, d := range c.Delimiters {
		if d.Open == "" || d.Close == "" {
			return fmt.Errorf("delimiters[%d]: open and close must be non-empty", i)
		}
		if _, err := ParseDisplay(d.Display); err != nil {
			return fmt.Errorf("delimiters[%d]: %w", i, err)
		}
	}

	switch c.Backups.Mode {
	case "", "sidecar", "none":
	default:
		return fmt.Errorf("backups.mode: unknown mode %q", c.Backups.Mode)
	}

	if c.Renderer.Width < 0 {
		return fmt.Errorf("renderer.width: must be non-negative, got %d", c.Renderer.Width)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs: must be non-negative, got %d", c.Jobs)
	}
	if c.Write && c.DryRun {
		return fmt.Errorf("write and dry-run are mutually exclusive")
	}

	return nil
}
