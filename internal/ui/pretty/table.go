package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LOC, EXPRESSION, MODE
	minFileWidth     = 20
	minLocWidth      = 8
	minExprWidth     = 30
	minModeWidth     = 7
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single expression row in the scan table.
type TableRow struct {
	File       string
	Location   string
	Expression string
	Display    mathitem.Display
}

// NewTableRow builds a row from a located expression.
func NewTableRow(path string, item *mathitem.MathItem) TableRow {
	return TableRow{
		File:       path,
		Location:   fmt.Sprintf("%d:%d", item.Start.I, item.Start.N),
		Expression: item.Start.Delim + item.Math + item.End.Delim,
		Display:    item.Display,
	}
}

// TableFormatter formats located expressions as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats expression rows, grouped per file, as a styled table.
func (t *TableFormatter) FormatTable(groups [][]TableRow) string {
	if len(groups) == 0 {
		return ""
	}

	colWidths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	isFirstGroup := true
	for _, group := range groups {
		if !isFirstGroup {
			builder.WriteString(t.formatSeparator(colWidths, lightSeparator))
			builder.WriteString("\n")
		}
		isFirstGroup = false

		for _, row := range group {
			builder.WriteString(t.formatRow(row, colWidths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file: minFileWidth,
		loc:  minLocWidth,
		expr: minExprWidth,
		mode: minModeWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			if len(row.File) > widths.file {
				widths.file = len(row.File)
			}
			if len(row.Location) > widths.loc {
				widths.loc = len(row.Location)
			}
			if len(row.Expression) > widths.expr {
				widths.expr = len(row.Expression)
			}
		}
	}

	// Constrain to terminal width
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		// Reduce expression width first
		excess := totalWidth - t.termWidth
		widths.expr = max(minExprWidth, widths.expr-excess)

		// If still too wide, reduce file width
		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.file = max(minFileWidth, widths.file-excess)
		}
	}

	return widths
}

type columnWidths struct {
	file int
	loc  int
	expr int
	mode int
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, "FILE",
		widths.loc, "LOC",
		widths.expr, "EXPRESSION",
		widths.mode, "MODE",
	)
	return t.styles.TableHeader.Render(header)
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.loc + widths.expr + widths.mode +
		(tablePadding * tableColumnCount)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	totalWidth := t.calculateTotalWidth(widths)
	sep := strings.Repeat(char, totalWidth)
	return t.styles.TableSeparator.Render(sep)
}

// formatRow formats a single table row. Block expressions get a
// distinguishing style.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	file := truncateFilePath(row.File, widths.file)
	loc := truncateString(row.Location, widths.loc)
	expr := truncateString(row.Expression, widths.expr)

	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, file,
		widths.loc, loc,
		widths.expr, expr,
		widths.mode, row.Display.String(),
	)

	if row.Display == mathitem.DisplayBlock {
		return t.styles.TableBlockRow.Render(content)
	}
	return content
}

// formatLegend formats the legend explaining the table columns.
func (t *TableFormatter) formatLegend() string {
	return t.styles.TableLegend.Render(
		" Legend: LOC = fragment:offset | MODE = display mode from the delimiters",
	)
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
