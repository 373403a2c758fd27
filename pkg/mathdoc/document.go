// Package mathdoc implements the host document abstraction and the driver
// that sequences every located expression through the compile, typeset and
// insert stages.
//
// A Document holds the source text as a string array of fragments, some of
// which are scannable for math (code blocks in Markdown sources are not).
// It implements mathitem.Document: splicing rendered output over source
// spans and restoring the original text on rollback, with offset
// bookkeeping so that multiple splices in one fragment stay consistent.
package mathdoc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

// Document error categories.
var (
	// ErrBadSplice indicates a splice range that is out of bounds or
	// overlaps a different item's splice.
	ErrBadSplice = errors.New("bad splice range")

	// ErrNoSplice indicates a restore for a span that was never spliced.
	ErrNoSplice = errors.New("no spliced output at location")
)

// Fragment is one entry of the document's string array.
type Fragment struct {
	// Text is the current content, including any applied splices.
	Text string

	// Scannable is false for fragments that must not be searched for
	// math (e.g. code blocks and inline code in Markdown).
	Scannable bool
}

// splice records one applied replacement in a fragment, keyed by its
// original source offsets. The record stays alive for the fragment's
// lifetime so later splices can translate original offsets to current ones.
type splice struct {
	start, end int // original source offsets
	length     int // current length of the replacement text
}

// Document is a host document for one rendering pass. It owns the found
// items and implements mathitem.Document for them. Not safe for concurrent
// use; a rendering pass is single-threaded by contract.
type Document struct {
	fragments []Fragment
	splices   map[int][]splice // fragment index -> applied splices, sorted

	jax       mathitem.InputJax
	renderer  mathitem.Renderer
	metrics   mathitem.Metrics
	indicator string

	items []*mathitem.MathItem
	found bool
}

// NewFromStrings creates a document over an explicit string array. All
// entries are scannable.
func NewFromStrings(strs []string, opts Options) *Document {
	fragments := make([]Fragment, len(strs))
	for i, s := range strs {
		fragments[i] = Fragment{Text: s, Scannable: true}
	}
	return newDocument(fragments, opts)
}

// NewFromText creates a document over a single plain-text (or TeX)
// fragment.
func NewFromText(source string, opts Options) *Document {
	return newDocument([]Fragment{{Text: source, Scannable: true}}, opts)
}

func newDocument(fragments []Fragment, opts Options) *Document {
	opts = opts.withDefaults()
	return &Document{
		fragments: fragments,
		splices:   make(map[int][]splice),
		jax:       opts.InputJax,
		renderer:  opts.Renderer,
		metrics:   opts.Metrics,
		indicator: opts.ErrorIndicator,
	}
}

// Renderer returns the document's output stage.
func (d *Document) Renderer() mathitem.Renderer {
	return d.renderer
}

// Metrics returns the environment parameters for this document.
func (d *Document) Metrics() mathitem.Metrics {
	return d.metrics
}

// Items returns the items found by FindMath, in document order.
func (d *Document) Items() []*mathitem.MathItem {
	return d.items
}

// Fragments returns the document's current string array.
func (d *Document) Fragments() []Fragment {
	return d.fragments
}

// Text returns the document's current full text, splices included.
func (d *Document) Text() string {
	var b strings.Builder
	for _, f := range d.fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Splice replaces the source span [start, end) in fragment start.I with the
// rendered text. Re-splicing the exact span of an earlier splice replaces
// that splice (re-rendering); overlapping a different span is an error.
func (d *Document) Splice(start, end mathitem.Location, rendered any) error {
	text, ok := rendered.(string)
	if !ok {
		return fmt.Errorf("%w: rendered output is %T, want string", ErrBadSplice, rendered)
	}
	return d.replace(start, end, text, true)
}

// Restore replaces a previously spliced span with the given literal text
// (empty to remove the expression's representation entirely).
func (d *Document) Restore(start, end mathitem.Location, text string) error {
	return d.replace(start, end, text, false)
}

// replace performs the shared splice/restore work. When insert is true a
// new splice record may be created; otherwise the span must already have
// one.
func (d *Document) replace(start, end mathitem.Location, text string, insert bool) error {
	frag := start.I
	if frag < 0 || frag >= len(d.fragments) {
		return fmt.Errorf("%w: fragment %d of %d", ErrBadSplice, frag, len(d.fragments))
	}
	if start.N < 0 || start.N > end.N {
		return fmt.Errorf("%w: [%d, %d)", ErrBadSplice, start.N, end.N)
	}

	records := d.splices[frag]
	idx := -1
	offset := 0
	for i, r := range records {
		if r.start == start.N && r.end == end.N {
			idx = i
			break
		}
		if r.end <= start.N {
			offset += r.length - (r.end - r.start)
			continue
		}
		if r.start < end.N {
			return fmt.Errorf("%w: [%d, %d) overlaps applied splice [%d, %d)",
				ErrBadSplice, start.N, end.N, r.start, r.end)
		}
	}

	if idx < 0 && !insert {
		return fmt.Errorf("%w: [%d, %d) in fragment %d", ErrNoSplice, start.N, end.N, frag)
	}

	cur := &d.fragments[frag]
	var at, curLen int
	if idx >= 0 {
		at = start.N + offset
		curLen = records[idx].length
	} else {
		at = start.N + offset
		curLen = end.N - start.N
	}
	if at < 0 || at+curLen > len(cur.Text) {
		return fmt.Errorf("%w: [%d, %d) beyond fragment of %d bytes",
			ErrBadSplice, at, at+curLen, len(cur.Text))
	}

	cur.Text = cur.Text[:at] + text + cur.Text[at+curLen:]

	if idx >= 0 {
		records[idx].length = len(text)
	} else {
		records = append(records, splice{start: start.N, end: end.N, length: len(text)})
		sort.Slice(records, func(i, j int) bool { return records[i].start < records[j].start })
	}
	d.splices[frag] = records
	return nil
}
