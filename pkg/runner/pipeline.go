package runner

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gomathdoc/pkg/config"
	"github.com/yaklabco/gomathdoc/pkg/find"
	"github.com/yaklabco/gomathdoc/pkg/fsutil"
	"github.com/yaklabco/gomathdoc/pkg/langdetect"
	"github.com/yaklabco/gomathdoc/pkg/mathdoc"
	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRenderFailure indicates the document could not be rendered at all.
	ErrRenderFailure = errors.New("render failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file through
// the safety pipeline.
type PipelineResult struct {
	// Path is the file path that was processed.
	Path string

	// Kind is the detected document kind.
	Kind langdetect.Kind

	// Render is the per-expression outcome of the rendering pass.
	// Nil when the file was skipped before rendering.
	Render *mathdoc.Result

	// Snapshot is the file state before processing.
	Snapshot *fsutil.Snapshot

	// Modified is true if the rendered content differs from the original.
	Modified bool

	// ModifiedContent is the rendered content (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run mode (nil otherwise).
	Diff *Diff

	// Skipped is true if the file was skipped.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "rendered (backup created)"
	case pr.Written:
		return "rendered"
	case pr.Modified:
		return "changes pending"
	case pr.Render != nil && pr.Render.Found > 0:
		return "up to date"
	default:
		return "no expressions"
	}
}

// PipelineOptions controls safety pipeline behavior.
type PipelineOptions struct {
	// Write rewrites files in place. Without it (and without DryRun) the
	// pipeline only reports what would change.
	Write bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification
	// detection. When false, only mod time and size are checked.
	StrictRaceDetection bool

	// ScanCodeBlocks scans inside Markdown code regions when true.
	ScanCodeBlocks bool
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Write:               false,
		DryRun:              false,
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// Pipeline orchestrates the safe rendering of a single file.
type Pipeline struct {
	// Finder locates delimited math in document text.
	Finder *find.Finder

	// DocOptions configure the documents the pipeline builds.
	DocOptions mathdoc.Options
}

// NewPipeline creates a pipeline with the given finder and document
// options. A nil finder uses the standard delimiter pairs.
func NewPipeline(finder *find.Finder, docOpts mathdoc.Options) *Pipeline {
	if finder == nil {
		finder = mathdoc.DefaultFinder()
	}
	return &Pipeline{Finder: finder, DocOptions: docOpts}
}

// PipelineFromConfig builds a pipeline from the resolved configuration.
func PipelineFromConfig(cfg *config.Config) (*Pipeline, error) {
	if cfg == nil {
		return NewPipeline(nil, mathdoc.Options{}), nil
	}

	delims, err := cfg.FindDelimiters()
	if err != nil {
		return nil, err
	}

	docOpts := mathdoc.Options{
		ErrorIndicator: cfg.Renderer.ErrorIndicator,
	}
	if cfg.Renderer.Width > 0 {
		m := mathdoc.DefaultMetrics()
		m.ContainerWidth = float64(cfg.Renderer.Width)
		m.LineWidth = float64(cfg.Renderer.Width)
		docOpts.Metrics = m
	}

	return NewPipeline(find.New(delims...), docOpts), nil
}

// RenderFile runs the full safety pipeline for a single file:
//
//  1. Read and hash the original file.
//  2. Classify it; non-document kinds are skipped.
//  3. Build a document (Markdown-aware when applicable) and render every
//     expression in it.
//  4. Generate a diff (dry-run) or check for concurrent modification,
//     create a backup, and write the rendered content atomically.
func (p *Pipeline) RenderFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	originalContent, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.RenderContent(ctx, path, originalContent, opts)
	if err != nil {
		return nil, err
	}
	result.Snapshot = snap

	if !result.Modified || result.Skipped || opts.DryRun || !opts.Write {
		return result, nil
	}

	// Check for concurrent modifications before writing.
	modified, err := p.checkModified(ctx, snap, opts.StrictRaceDetection)
	if err != nil {
		return nil, err
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// RenderContent renders in-memory content without touching the disk. This
// is the read-only front half of RenderFile, also used directly for
// report-only runs and tests.
func (p *Pipeline) RenderContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	result.Kind = langdetect.DetectFile(path, originalContent)
	if !result.Kind.Renderable() {
		result.Skipped = true
		result.SkipReason = fmt.Sprintf("not a renderable document (%s)", result.Kind)
		return result, nil
	}

	doc := p.buildDocument(result.Kind, string(originalContent), opts)

	render, err := doc.Render(ctx, p.Finder)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailure, path, err)
	}
	result.Render = render

	rendered := doc.Text()
	if rendered == string(originalContent) {
		return result, nil
	}

	result.Modified = true
	result.ModifiedContent = []byte(rendered)

	if opts.DryRun {
		result.Diff = GenerateDiff(path, originalContent, result.ModifiedContent)
	}

	return result, nil
}

// ScanContent locates expressions in content without rendering them. It
// returns nil when the content is not a renderable document, and a
// possibly empty slice otherwise. Returned items are in document order.
func (p *Pipeline) ScanContent(path string, content []byte, scanCodeBlocks bool) []*mathitem.MathItem {
	kind := langdetect.DetectFile(path, content)
	if !kind.Renderable() {
		return nil
	}

	doc := p.buildDocument(kind, string(content), PipelineOptions{ScanCodeBlocks: scanCodeBlocks})
	items := doc.FindMath(p.Finder)
	if items == nil {
		items = []*mathitem.MathItem{}
	}
	return items
}

// RestoreFile puts a file back to its pre-render content from its backup.
func (p *Pipeline) RestoreFile(ctx context.Context, path string, backup fsutil.BackupConfig) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	restored, err := fsutil.RestoreBackup(ctx, path, backup.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	if !restored {
		result.Skipped = true
		result.SkipReason = "no backup to restore"
		return result, nil
	}

	result.Modified = true
	result.Written = true
	return result, nil
}

// buildDocument constructs the document for the detected kind. Markdown
// gets code-region masking unless code scanning is enabled.
func (p *Pipeline) buildDocument(kind langdetect.Kind, source string, opts PipelineOptions) *mathdoc.Document {
	if kind == langdetect.KindMarkdown && !opts.ScanCodeBlocks {
		return mathdoc.NewFromMarkdown(source, p.DocOptions)
	}
	return mathdoc.NewFromText(source, p.DocOptions)
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, snap *fsutil.Snapshot, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, snap)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, snap)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
// It uses errors.Is for robust error detection rather than string matching.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrRenderFailure) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	mode := fsutil.BackupMode(cfg.Backups.Mode)
	if mode == "" {
		mode = fsutil.BackupModeSidecar
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled,
		Mode:    mode,
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Write:               cfg.Write,
		DryRun:              cfg.DryRun,
		Backup:              BackupConfigFromConfig(cfg),
		StrictRaceDetection: true,
		ScanCodeBlocks:      cfg.Scan.CodeBlocks,
	}
}
