package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomathdoc/internal/ui/pretty"
	"github.com/yaklabco/gomathdoc/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:      10,
		FilesWritten:        3,
		ExpressionsFound:    15,
		ExpressionsRendered: 14,
		ExpressionsFailed:   1,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files scanned:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Files written:")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "Expressions found:")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Rendered:")
	assert.Contains(t, result, "14")
	assert.Contains(t, result, "Failed:")
}

func TestFormatSummary_CleanRun(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:      5,
		ExpressionsFound:    8,
		ExpressionsRendered: 8,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Render succeeded")
	assert.NotContains(t, result, "Failed:")
}

func TestFormatSummary_WithFailures(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:      10,
		ExpressionsFound:    5,
		ExpressionsRendered: 3,
		ExpressionsFailed:   2,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Render completed with failures")
}

func TestFormatSummary_NothingFound(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesProcessed: 4}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Nothing to render")
}

func TestFormatSummaryOneLine_NoExpressions(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesProcessed: 7}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "No expressions found")
	assert.Contains(t, result, "7 files scanned")
}

func TestFormatSummaryOneLine_Rendered(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:      3,
		FilesModified:       2,
		ExpressionsFound:    6,
		ExpressionsRendered: 6,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "6 expressions rendered in 2 files")
	assert.NotContains(t, result, "failed")
}

func TestFormatSummaryOneLine_SingularForms(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesModified:       1,
		FilesWritten:        1,
		ExpressionsFound:    1,
		ExpressionsRendered: 1,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 expression rendered in 1 file")
	assert.Contains(t, result, "1 file written")
}

func TestFormatSummaryOneLine_WithFailuresAndSkips(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:      5,
		FilesModified:       3,
		FilesSkipped:        1,
		ExpressionsFound:    10,
		ExpressionsRendered: 8,
		ExpressionsFailed:   2,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "8 expressions rendered in 3 files")
	assert.Contains(t, result, "2 failed")
	assert.Contains(t, result, "1 skipped")
}
