package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomathdoc/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "7 expressions rendered in 3 files, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ExpressionsFound == 0 {
		return s.Dim.Render(fmt.Sprintf("No expressions found (%d files scanned)", stats.FilesProcessed)) + "\n"
	}

	var parts []string

	exprWord := "expressions"
	if stats.ExpressionsRendered == 1 {
		exprWord = "expression"
	}

	fileWord := wordFiles
	if stats.FilesModified == 1 {
		fileWord = wordFile
	}

	parts = append(parts, s.Success.Render(
		fmt.Sprintf("%d %s rendered", stats.ExpressionsRendered, exprWord))+
		fmt.Sprintf(" in %d %s", stats.FilesModified, fileWord))

	if stats.ExpressionsFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.ExpressionsFailed)))
	}

	if stats.FilesWritten > 0 {
		writtenWord := wordFiles
		if stats.FilesWritten == 1 {
			writtenWord = wordFile
		}
		parts = append(parts, fmt.Sprintf("%d %s written", stats.FilesWritten, writtenWord))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files scanned:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:     " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}

	builder.WriteString("\n")

	// Expressions
	builder.WriteString("  Expressions found: " +
		s.SummaryValue.Render(strconv.Itoa(stats.ExpressionsFound)) + "\n")

	if stats.ExpressionsRendered > 0 {
		builder.WriteString("    Rendered:        " +
			s.Success.Render(strconv.Itoa(stats.ExpressionsRendered)) + "\n")
	}
	if stats.ExpressionsFailed > 0 {
		builder.WriteString("    Failed:          " +
			s.Failure.Render(strconv.Itoa(stats.ExpressionsFailed)) + "\n")
	}

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.ExpressionsFailed > 0 || stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Render completed with failures"))
	case stats.ExpressionsFound == 0:
		builder.WriteString(s.Dim.Render("Nothing to render"))
	default:
		builder.WriteString(s.Success.Render("Render succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}
