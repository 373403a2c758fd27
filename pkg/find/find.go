// Package find locates mathematical expressions in document text. It scans
// a string array for configured delimiter pairs and emits
// mathitem.ProtoItem records, which a document driver later promotes to
// full items.
package find

import (
	"sort"
	"strings"

	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

// Delimiters is one open/close pair and the display mode it declares.
// A pair may declare DisplayUnresolved to mean the mode cannot be inferred
// from the delimiters; such matches take the escaped render path.
type Delimiters struct {
	Open    string
	Close   string
	Display mathitem.Display
}

// DefaultDelimiters returns the standard TeX delimiter pairs: $$...$$ and
// \[...\] for block mode, \(...\) and $...$ for inline mode.
func DefaultDelimiters() []Delimiters {
	return []Delimiters{
		{Open: "$$", Close: "$$", Display: mathitem.DisplayBlock},
		{Open: `\[`, Close: `\]`, Display: mathitem.DisplayBlock},
		{Open: `\(`, Close: `\)`, Display: mathitem.DisplayInline},
		{Open: "$", Close: "$", Display: mathitem.DisplayInline},
	}
}

// Finder scans text for math expressions between configured delimiters.
// Escaped delimiters (\$) are not matched; unclosed delimiters are
// tolerated and skipped. A Finder is stateless after construction and safe
// for concurrent use.
type Finder struct {
	delims []Delimiters
}

// New creates a Finder with the given delimiter pairs, or the defaults when
// none are supplied. Pairs with longer open delimiters are tried first so
// that $$ wins over $.
func New(delims ...Delimiters) *Finder {
	if len(delims) == 0 {
		delims = DefaultDelimiters()
	}
	sorted := make([]Delimiters, len(delims))
	copy(sorted, delims)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Open) > len(sorted[j].Open)
	})
	return &Finder{delims: sorted}
}

// FindStrings scans every entry of a string array and returns the proto
// items found, in document order. The entry index is recorded as each
// item's N.
func (f *Finder) FindStrings(strs []string) []mathitem.ProtoItem {
	var items []mathitem.ProtoItem
	for n, s := range strs {
		items = append(items, f.FindString(n, s)...)
	}
	return items
}

// FindString scans a single string-array entry, identified by index n.
func (f *Finder) FindString(n int, s string) []mathitem.ProtoItem {
	var items []mathitem.ProtoItem

	i := 0
	for i < len(s) {
		d, ok := f.matchOpen(s, i)
		if !ok {
			// A backslash not opening a delimiter escapes the next
			// character (e.g. \$ is a literal dollar).
			if s[i] == '\\' && i+1 < len(s) {
				i += 2
				continue
			}
			i++
			continue
		}

		start := i
		contentStart := i + len(d.Open)
		contentEnd, found := findClose(s, contentStart, d.Close)
		if !found {
			// Unclosed delimiter: tolerate and move past the opener.
			i = contentStart
			continue
		}

		math := s[contentStart:contentEnd]
		end := contentEnd + len(d.Close)
		items = append(items, mathitem.NewProtoItem(d.Open, math, d.Close, n, start, end, d.Display))
		i = end
	}

	return items
}

// matchOpen finds the first configured pair whose open delimiter matches at
// position i. Pairs are pre-sorted longest-open first.
func (f *Finder) matchOpen(s string, i int) (Delimiters, bool) {
	for _, d := range f.delims {
		if strings.HasPrefix(s[i:], d.Open) {
			return d, true
		}
	}
	return Delimiters{}, false
}

// findClose locates the close delimiter at or after `from`, skipping
// escaped characters. Empty content is not a match (e.g. "$$" alone is not
// an inline pair). Returns the content end offset.
func findClose(s string, from int, close string) (int, bool) {
	j := from
	for j < len(s) {
		// Close delimiters may themselves start with a backslash (\]),
		// so the match is tried before the escape skip.
		if strings.HasPrefix(s[j:], close) {
			if j == from {
				return 0, false
			}
			return j, true
		}
		if s[j] == '\\' && j+1 < len(s) {
			j += 2
			continue
		}
		j++
	}
	return 0, false
}
