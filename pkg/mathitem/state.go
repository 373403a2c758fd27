package mathitem

// State identifies how far a MathItem has progressed through the
// compile / typeset / insert pipeline. States are strictly ordered;
// forward operations advance one level at a time and rollback may jump
// to any earlier level.
type State uint8

// Lifecycle states in increasing order.
const (
	// StateUnprocessed is the initial state: only source text is known.
	StateUnprocessed State = iota

	// StateCompiled means the source has been parsed into an internal tree.
	StateCompiled

	// StateTypeset means the tree has been rendered to output.
	StateTypeset

	// StateInserted means the rendered output has been spliced into the
	// host document.
	StateInserted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnprocessed:
		return "unprocessed"
	case StateCompiled:
		return "compiled"
	case StateTypeset:
		return "typeset"
	case StateInserted:
		return "inserted"
	default:
		return "unknown"
	}
}

// Display identifies the rendering mode of an expression.
//
// The zero value is DisplayUnresolved, meaning the mode has not been
// determined yet (e.g., the scanner matched a delimiter pair that does not
// imply a mode). Unresolved items take the escaped render path.
type Display uint8

// Display modes.
const (
	// DisplayUnresolved means the mode is not yet determined.
	DisplayUnresolved Display = iota

	// DisplayInline renders the expression in line with surrounding text.
	DisplayInline

	// DisplayBlock renders the expression as a standalone block.
	DisplayBlock
)

// String returns a human-readable mode name.
func (d Display) String() string {
	switch d {
	case DisplayInline:
		return "inline"
	case DisplayBlock:
		return "block"
	default:
		return "unresolved"
	}
}
