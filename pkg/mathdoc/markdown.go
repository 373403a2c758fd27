package mathdoc

import (
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// NewFromMarkdown creates a document from Markdown source. The source is
// parsed with goldmark and split into fragments so that code regions
// (fenced and indented code blocks, inline code spans) are not scannable:
// a dollar sign inside code never starts an expression.
func NewFromMarkdown(source string, opts Options) *Document {
	masked := maskedSpans([]byte(source))
	return newDocument(splitFragments(source, masked), opts)
}

// span is a byte range of the source that must not be scanned.
type span struct {
	start, end int
}

// maskedSpans collects the code regions of a Markdown source.
func maskedSpans(source []byte) []span {
	md := goldmark.New()
	reader := text.NewReader(source)
	doc := md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	var spans []span
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := range lines.Len() {
				seg := lines.At(i)
				spans = append(spans, span{start: seg.Start, end: seg.Stop})
			}
			return ast.WalkSkipChildren, nil

		case *ast.CodeSpan:
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if t, ok := child.(*ast.Text); ok {
					seg := t.Segment
					spans = append(spans, span{start: seg.Start, end: seg.Stop})
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return mergeSpans(spans)
}

// mergeSpans sorts and coalesces adjacent or overlapping spans.
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// splitFragments cuts the source into alternating scannable text and
// non-scannable code fragments. Concatenating the fragments reproduces the
// source exactly.
func splitFragments(source string, masked []span) []Fragment {
	if len(masked) == 0 {
		return []Fragment{{Text: source, Scannable: true}}
	}

	var fragments []Fragment
	pos := 0
	for _, s := range masked {
		if s.start > pos {
			fragments = append(fragments, Fragment{Text: source[pos:s.start], Scannable: true})
		}
		fragments = append(fragments, Fragment{Text: source[s.start:s.end], Scannable: false})
		pos = s.end
	}
	if pos < len(source) {
		fragments = append(fragments, Fragment{Text: source[pos:], Scannable: true})
	}
	return fragments
}
