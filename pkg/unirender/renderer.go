// Package unirender provides a mathitem.Renderer that typesets compiled
// math trees as plain Unicode text, suitable for splicing back into text
// documents. Superscripts and subscripts use the Unicode script blocks
// where possible, fractions and radicals are rendered linearly, and the
// bounding box is measured in character cells.
package unirender

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/yaklabco/gomathdoc/pkg/mathitem"
	"github.com/yaklabco/gomathdoc/pkg/mml"
)

// Renderer implements mathitem.Renderer with Unicode text output.
type Renderer struct{}

// New creates a new Unicode text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name identifies this renderer in item data maps.
func (r *Renderer) Name() string {
	return "unicode"
}

// Stats is the renderer-private record stored in an item's OutputData after
// a successful typeset.
type Stats struct {
	// Fallbacks counts constructs that could not use a dedicated Unicode
	// form and fell back to caret/underscore notation.
	Fallbacks int
}

// Typeset renders the item's compiled tree to a Unicode string. It
// populates the item's BBox with width, height and depth in character
// cells, scaled by the captured metrics.
func (r *Renderer) Typeset(ctx context.Context, item *mathitem.MathItem, _ mathitem.Document) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("typeset cancelled: %w", err)
	}
	if item.Root == nil {
		return nil, fmt.Errorf("item %q has no compiled tree", item.Math)
	}

	st := &state{}
	text := st.render(item.Root)

	scale := item.Metrics.Scale
	if scale == 0 {
		scale = 1
	}
	item.BBox["width"] = cellWidth(text) * scale
	item.BBox["height"] = scale
	item.BBox["depth"] = 0

	if item.OutputData != nil {
		item.OutputData[r.Name()] = Stats{Fallbacks: st.fallbacks}
	}

	return text, nil
}

// Escaped reproduces the item's literal source, delimiters included. It is
// the render path for items whose display mode is unresolved.
func (r *Renderer) Escaped(ctx context.Context, item *mathitem.MathItem, _ mathitem.Document) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("typeset cancelled: %w", err)
	}
	return item.Start.Delim + item.Math + item.End.Delim, nil
}

// state accumulates render statistics across one tree walk.
type state struct {
	fallbacks int
}

// render converts a tree node to its Unicode text form.
func (st *state) render(n *mml.Node) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case mml.KindMath, mml.KindRow, mml.KindError:
		return st.renderRow(n)

	case mml.KindIdentifier, mml.KindNumber, mml.KindText:
		return n.Text

	case mml.KindOperator:
		if spacedOperators[n.Text] {
			return " " + n.Text + " "
		}
		return n.Text

	case mml.KindSup:
		return st.render(n.Child(0)) + st.script(n.Child(1), superscripts, "^")

	case mml.KindSub:
		return st.render(n.Child(0)) + st.script(n.Child(1), subscripts, "_")

	case mml.KindSubSup:
		return st.render(n.Child(0)) +
			st.script(n.Child(1), subscripts, "_") +
			st.script(n.Child(2), superscripts, "^")

	case mml.KindFrac:
		return st.renderFrac(n)

	case mml.KindSqrt:
		return "√" + st.group(n.Child(0))

	case mml.KindRoot:
		return st.renderRoot(n)

	default:
		return st.renderRow(n)
	}
}

func (st *state) renderRow(n *mml.Node) string {
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(st.render(child))
	}
	// Collapse doubled spaces produced by adjacent spaced operators.
	return strings.TrimSpace(strings.ReplaceAll(b.String(), "  ", " "))
}

// script renders a super- or subscript child through the given translation
// table, falling back to op("^" or "_") plus a parenthesized group when the
// content has no Unicode script form.
func (st *state) script(n *mml.Node, table map[rune]rune, op string) string {
	text := st.render(n)
	if s, ok := toScript(text, table); ok {
		return s
	}
	st.fallbacks++
	if isSimple(n) {
		return op + text
	}
	return op + "(" + text + ")"
}

func (st *state) renderFrac(n *mml.Node) string {
	num, den := n.Child(0), n.Child(1)
	if isSimple(num) && isSimple(den) {
		return st.render(num) + "⁄" + st.render(den)
	}
	return "(" + st.render(num) + ")/(" + st.render(den) + ")"
}

func (st *state) renderRoot(n *mml.Node) string {
	rad, idx := n.Child(0), n.Child(1)
	idxText := st.render(idx)
	if s, ok := toScript(idxText, superscripts); ok {
		return s + "√" + st.group(rad)
	}
	st.fallbacks++
	return "√[" + idxText + "]" + st.group(rad)
}

// group parenthesizes compound content under a radical.
func (st *state) group(n *mml.Node) string {
	if isSimple(n) {
		return st.render(n)
	}
	return "(" + st.render(n) + ")"
}

// isSimple returns true for single-token content that needs no grouping.
func isSimple(n *mml.Node) bool {
	return n != nil && n.IsToken()
}

// cellWidth measures a string in terminal cells, counting East Asian wide
// and fullwidth runes as two cells.
func cellWidth(s string) float64 {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return float64(w)
}
