package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomathdoc/internal/logging"
	"github.com/yaklabco/gomathdoc/internal/ui/pretty"
	"github.com/yaklabco/gomathdoc/pkg/fsutil"
	"github.com/yaklabco/gomathdoc/pkg/runner"
)

type scanFlags struct {
	codeBlocks bool
	ignore     []string
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "List math expressions without rendering",
		Long: `Locate delimited math expressions in documents and print them as a
table, one group per file, without modifying anything.

Examples:
  gomathdoc scan               # Scan the current directory
  gomathdoc scan docs/ notes/  # Scan specific directories
  gomathdoc scan README.md     # Scan a single file`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.codeBlocks, "code-blocks", false, "also scan inside Markdown code regions")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.Default()

	ctx := logging.WithLogger(cmd.Context(), logger)

	cfg, workDir, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("code-blocks") {
		cfg.Scan.CodeBlocks = flags.codeBlocks
	}
	if len(flags.ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, flags.ignore...)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pipeline, err := runner.PipelineFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	files, err := runner.Discover(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Scan.Extensions,
		ExcludeGlobs: cfg.Ignore,
	})
	if err != nil {
		return errors.Join(errors.New("discover files"), err)
	}

	logger.Debug("scanning files", logging.FieldFiles, len(files))

	groups, scanned, err := collectExpressions(ctx, pipeline, files, cfg.Scan.CodeBlocks)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	colorEnabled := pretty.IsColorEnabled(colorMode, out)
	styles := pretty.NewStyles(colorEnabled)

	total := 0
	for _, group := range groups {
		total += len(group)
	}
	if total == 0 {
		fmt.Fprintf(out, "No expressions found (%d files scanned)\n", scanned)
		return nil
	}

	formatter := pretty.NewTableFormatter(styles, colorEnabled, terminalWidth(out))
	fmt.Fprint(out, formatter.FormatTable(groups))

	exprWord := "expressions"
	if total == 1 {
		exprWord = "expression"
	}
	fileWord := "files"
	if len(groups) == 1 {
		fileWord = "file"
	}
	fmt.Fprintf(out, "\n%d %s in %d %s\n", total, exprWord, len(groups), fileWord)

	return nil
}

// collectExpressions locates expressions per file without mutating any
// document state beyond the find step.
func collectExpressions(
	ctx context.Context,
	pipeline *runner.Pipeline,
	files []string,
	codeBlocks bool,
) ([][]pretty.TableRow, int, error) {
	logger := logging.FromContext(ctx)

	var groups [][]pretty.TableRow
	scanned := 0

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, scanned, fmt.Errorf("scan cancelled: %w", err)
		}

		content, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, scanned, fmt.Errorf("read %s: %w", path, err)
		}

		items := pipeline.ScanContent(path, content, codeBlocks)
		if items == nil {
			continue
		}
		scanned++
		logger.Debug("scanned file", logging.FieldPath, path, logging.FieldFound, len(items))
		if len(items) == 0 {
			continue
		}

		rows := make([]pretty.TableRow, 0, len(items))
		for _, item := range items {
			rows = append(rows, pretty.NewTableRow(path, item))
		}
		groups = append(groups, rows)
	}

	return groups, scanned, nil
}

// terminalWidth returns the width of the terminal behind writer, or a
// conservative default when writer is not a terminal.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return 0
}
