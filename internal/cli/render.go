package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomathdoc/internal/logging"
	"github.com/yaklabco/gomathdoc/internal/ui/pretty"
	"github.com/yaklabco/gomathdoc/pkg/config"
	"github.com/yaklabco/gomathdoc/pkg/runner"
)

// ErrRenderFailures is returned when one or more expressions failed to
// render. It signals the exit code without carrying a message of its own.
var ErrRenderFailures = errors.New("render failures")

type renderFlags struct {
	errorIndicator string
	width          int
	codeBlocks     bool
	noBackups      bool
	ignore         []string
}

func newRenderCommand() *cobra.Command {
	var cfg config.Config
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render math expressions in documents",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &cfg, flags)
		},
	}

	addRenderFlags(cmd, &cfg, flags)

	return cmd
}

const renderLongDescription = `Render delimited TeX math in documents to Unicode text.

By default, scans all supported files in the current directory and
subdirectories and reports what would change. Use --write to rewrite
files in place.

Examples:
  gomathdoc render                   # Report pending changes
  gomathdoc render docs/             # Limit to the docs directory
  gomathdoc render README.md --write # Render a single file in place
  gomathdoc render --dry-run         # Show diffs without writing
  gomathdoc render --restore         # Put files back from backups`

func runRender(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *renderFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, workDir, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Overlay explicitly provided CLI flags on the loaded config.
	cfg.Write = cliCfg.Write
	cfg.DryRun = cliCfg.DryRun
	cfg.Restore = cliCfg.Restore
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = cliCfg.Jobs
	}
	if cmd.Flags().Changed("error-indicator") {
		cfg.Renderer.ErrorIndicator = flags.errorIndicator
	}
	if cmd.Flags().Changed("width") {
		cfg.Renderer.Width = flags.width
	}
	if cmd.Flags().Changed("code-blocks") {
		cfg.Scan.CodeBlocks = flags.codeBlocks
	}
	if flags.noBackups {
		cfg.Backups.Enabled = false
	}
	if len(flags.ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("configuration loaded",
		logging.FieldWrite, cfg.Write,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	pipeline, err := runner.PipelineFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	renderRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Scan.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting render run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := renderRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("render run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	colorEnabled := pretty.IsColorEnabled(colorMode, out)
	styles := pretty.NewStyles(colorEnabled)

	reportRenderResult(out, styles, result, cfg.DryRun)

	switch ExitCodeFromResult(result) {
	case ExitRenderFailures:
		return ErrRenderFailures
	case ExitSuccess:
		return nil
	default:
		return fmt.Errorf("%d files could not be processed", result.Stats.FilesErrored)
	}
}

// reportRenderResult prints per-file outcomes followed by a summary.
func reportRenderResult(out io.Writer, styles *pretty.Styles, result *runner.Result, dryRun bool) {
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(out, "%s: %s\n",
				styles.FilePath.Render(file.Path),
				styles.ErrorText.Render(file.Error.Error()))
			continue
		}
		if file.Result == nil {
			continue
		}

		if dryRun && file.Result.Diff.HasChanges() {
			fmt.Fprint(out, styles.FormatDiff(file.Result.Diff))
		}

		if render := file.Result.Render; render != nil {
			for _, itemErr := range render.Errors {
				fmt.Fprint(out, styles.FormatItemError(file.Path, itemErr))
			}
		}
	}

	fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
}

// loadConfig resolves the configuration from the --config flag, config
// discovery, and environment overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	return cfg, workDir, nil
}

func addRenderFlags(cmd *cobra.Command, cfg *config.Config, flags *renderFlags) {
	cmd.Flags().BoolVar(&cfg.Write, "write", false, "rewrite files in place")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show diffs without writing files")
	cmd.Flags().BoolVar(&cfg.Restore, "restore", false, "restore files from their backups")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.errorIndicator, "error-indicator", "",
		"text spliced over expressions that fail to render (empty keeps the source)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "target line width for block layout (0 = default)")
	cmd.Flags().BoolVar(&flags.codeBlocks, "code-blocks", false, "also scan inside Markdown code regions")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation when writing")
}
