package mathitem

// Location is a position reference inside the host document.
//
// A location is either index-based (N holds a character offset within a
// string-array entry) or node-based (Node holds a direct reference into the
// document and I an optional child index). Consumers must not assume both
// are populated. Following the DOM StaticRange precedent, offsets are not
// validated against the document; they are trusted from the producer.
type Location struct {
	// N is the character offset within the containing string-array entry.
	// Meaningful only for index-based locations.
	N int

	// I is the string-array entry index for index-based locations, or the
	// child index within Node for node-based ones.
	I int

	// Delim is an optional delimiter string marking a boundary token at
	// this location (e.g., "$" or "\\(").
	Delim string

	// Node is a direct reference into the host document. When non-nil the
	// location is node-based and N must be ignored.
	Node any
}

// IsNodeBased returns true if this location refers directly to a document
// node rather than a string-array offset.
func (l Location) IsNodeBased() bool {
	return l.Node != nil
}

// ProtoItem is a provisional match produced by a scanning collaborator:
// an expression that has been located but not yet promoted to a MathItem.
// ProtoItems are immutable after creation and consumed exactly once.
type ProtoItem struct {
	// Open and Close are the delimiter strings around the match.
	// Either may be empty.
	Open, Close string

	// Math is the raw matched source text, without delimiters.
	Math string

	// N identifies which string-array entry the match was found in.
	N int

	// Start and End locate the match within that entry.
	Start, End Location

	// Display is the rendering mode declared by the matched delimiters,
	// or DisplayUnresolved when the delimiters do not imply one.
	Display Display
}

// NewProtoItem creates a ProtoItem for a match found in string-array entry n
// at character offsets [start, end). Offsets are trusted from the caller; no
// validation is performed. The delimiters are recorded on the boundary
// locations so that a restore can reproduce the original text exactly.
func NewProtoItem(open, math, close string, n, start, end int, display Display) ProtoItem {
	return ProtoItem{
		Open:    open,
		Close:   close,
		Math:    math,
		N:       n,
		Start:   Location{I: n, N: start, Delim: open},
		End:     Location{I: n, N: end, Delim: close},
		Display: display,
	}
}

// Source returns the full original text of the match, delimiters included.
func (p ProtoItem) Source() string {
	return p.Open + p.Math + p.Close
}
