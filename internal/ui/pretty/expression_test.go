package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomathdoc/internal/ui/pretty"
	"github.com/yaklabco/gomathdoc/pkg/mathdoc"
	"github.com/yaklabco/gomathdoc/pkg/mathitem"
	"github.com/yaklabco/gomathdoc/pkg/runner"
)

func newItem(math string) *mathitem.MathItem {
	proto := mathitem.NewProtoItem("$", math, "$", 0, 4, 4+len(math)+2, mathitem.DisplayInline)
	return mathitem.NewItem(proto, nil)
}

func TestFormatExpression(t *testing.T) {
	styles := pretty.NewStyles(false)
	item := newItem("x^2")

	result := styles.FormatExpression("docs/readme.md", item)

	assert.Contains(t, result, "docs/readme.md:0:4")
	assert.Contains(t, result, "$x^2$")
	assert.Contains(t, result, "unprocessed")
}

func TestFormatItemError(t *testing.T) {
	styles := pretty.NewStyles(false)
	item := newItem(`\nosuchmacro`)

	result := styles.FormatItemError("doc.md", mathdoc.ItemError{
		Item: item,
		Err:  errors.New("unknown macro"),
	})

	assert.Contains(t, result, "Error:")
	assert.Contains(t, result, "unknown macro")
	assert.Contains(t, result, `$\nosuchmacro$`)
}

func TestFormatState(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "unprocessed", styles.FormatState(mathitem.StateUnprocessed))
	assert.Equal(t, "compiled", styles.FormatState(mathitem.StateCompiled))
	assert.Equal(t, "typeset", styles.FormatState(mathitem.StateTypeset))
	assert.Equal(t, "inserted", styles.FormatState(mathitem.StateInserted))
}

func TestFormatFileHeader(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "doc.md", styles.FormatFileHeader("doc.md", 0))
	assert.Equal(t, "doc.md (1 expression)", styles.FormatFileHeader("doc.md", 1))
	assert.Equal(t, "doc.md (3 expressions)", styles.FormatFileHeader("doc.md", 3))
}

func TestFormatDiff(t *testing.T) {
	styles := pretty.NewStyles(false)

	diff := runner.GenerateDiff("doc.md",
		[]byte("intro\nsee $x^2$ here\noutro\n"),
		[]byte("intro\nsee x² here\noutro\n"))
	require.NotNil(t, diff)

	result := styles.FormatDiff(diff)

	assert.Contains(t, result, "diff --git a/doc.md b/doc.md")
	assert.Contains(t, result, "--- a/doc.md")
	assert.Contains(t, result, "+++ b/doc.md")
	assert.Contains(t, result, "-see $x^2$ here")
	assert.Contains(t, result, "+see x² here")
	assert.Contains(t, result, "@@ -1,3 +1,3 @@")
}

func TestFormatDiff_NoChanges(t *testing.T) {
	styles := pretty.NewStyles(false)

	var diff *runner.Diff
	assert.Empty(t, styles.FormatDiff(diff))
}
