package mathitem

import (
	"context"

	"github.com/yaklabco/gomathdoc/pkg/mml"
)

// InputJax compiles an item's source text into an internal tree.
//
// This package defines the interface it consumes; implementations (e.g.,
// textex) provide the concrete parsing logic.
//
// Implementations must be:
//   - pure with respect to the lifecycle core: no document access,
//   - deterministic for a given (source, display) pair,
//   - free of retained references to the item after Compile returns.
type InputJax interface {
	// Name identifies this jax. It is used as the item's InputData key.
	Name() string

	// Compile parses the item's source text into an internal tree.
	// On failure it returns a descriptive error; no partial tree.
	Compile(ctx context.Context, item *MathItem) (*mml.Node, error)
}

// Renderer produces drawable output from a compiled tree. The two entry
// points are selected by the item's display mode: items whose mode is
// unresolved take the escaped path, which reproduces the literal source
// rather than typeset output.
type Renderer interface {
	// Name identifies this renderer. It is used as the item's OutputData key.
	Name() string

	// Typeset renders the item's compiled tree. It must populate the
	// item's BBox and may stash private state in OutputData.
	Typeset(ctx context.Context, item *MathItem, doc Document) (any, error)

	// Escaped renders the item's literal source, for items whose display
	// mode could not be resolved.
	Escaped(ctx context.Context, item *MathItem, doc Document) (any, error)
}

// Document is the host document driver as seen by a single item: the means
// to obtain the active renderer and environment metrics, and to splice
// rendered output into (or original text back over) a location range.
//
// An item touches the document only inside UpdateDocument and
// RemoveFromDocument, bounded by the Start/End range recorded at
// construction, and retains only this non-owning handle in between.
type Document interface {
	// Renderer returns the output stage for this document.
	Renderer() Renderer

	// Metrics returns the rendering-environment parameters currently in
	// effect for this document.
	Metrics() Metrics

	// Splice replaces the source span [start, end) with rendered output.
	Splice(start, end Location, rendered any) error

	// Restore replaces a previously spliced span with the given literal
	// text (empty to leave the expression without any representation).
	Restore(start, end Location, text string) error
}
