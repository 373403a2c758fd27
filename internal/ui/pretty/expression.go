package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomathdoc/pkg/mathdoc"
	"github.com/yaklabco/gomathdoc/pkg/mathitem"
	"github.com/yaklabco/gomathdoc/pkg/runner"
)

// FormatExpression formats a single located expression for terminal output.
func (s *Styles) FormatExpression(path string, item *mathitem.MathItem) string {
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		item.Start.I,
		item.Start.N,
	)

	state := s.FormatState(item.State())
	source := s.Expression.Render(item.Start.Delim + item.Math + item.End.Delim)

	return fmt.Sprintf("  %s  %s  %s\n", location, state, source)
}

// FormatItemError formats a failed expression with its error.
func (s *Styles) FormatItemError(path string, itemErr mathdoc.ItemError) string {
	var builder strings.Builder

	builder.WriteString(s.FormatExpression(path, itemErr.Item))
	builder.WriteString("    " + s.Dim.Render("Error:") + " " +
		s.ErrorText.Render(itemErr.Err.Error()) + "\n")

	return builder.String()
}

// FormatState returns a styled lifecycle state string.
func (s *Styles) FormatState(state mathitem.State) string {
	switch state {
	case mathitem.StateInserted:
		return s.Rendered.Render(state.String())
	case mathitem.StateUnprocessed:
		return s.Failed.Render(state.String())
	default:
		return s.Skipped.Render(state.String())
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, expressionCount int) string {
	header := s.FilePath.Render(path)
	if expressionCount > 0 {
		word := "expressions"
		if expressionCount == 1 {
			word = "expression"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", expressionCount, word))
	}
	return header
}

// FormatDiff renders a unified diff with per-line styling.
func (s *Styles) FormatDiff(diff *runner.Diff) string {
	if !diff.HasChanges() {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(s.DiffHeader.Render(diff.GitHeader()) + "\n")

	path := strings.TrimPrefix(diff.Path, "/")
	builder.WriteString(s.DiffHeader.Render("--- a/"+path) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ b/"+path) + "\n")

	for _, hunk := range diff.Hunks {
		header := fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)
		builder.WriteString(s.DiffHunk.Render(header) + "\n")

		for _, line := range hunk.Lines {
			switch line.Kind {
			case runner.DiffLineAdd:
				builder.WriteString(s.DiffAdd.Render("+"+line.Content) + "\n")
			case runner.DiffLineRemove:
				builder.WriteString(s.DiffRemove.Render("-"+line.Content) + "\n")
			default:
				builder.WriteString(s.DiffContext.Render(" "+line.Content) + "\n")
			}
		}
	}

	return builder.String()
}
