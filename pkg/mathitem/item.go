// Package mathitem implements the lifecycle of a single mathematical
// expression as it moves from raw source text, through a compiled internal
// tree, to rendered output spliced into a host document.
//
// The central type is MathItem, a state machine with the ordered states
// unprocessed < compiled < typeset < inserted. Forward operations are
// idempotent; TransitionTo drives the state backward with cascading
// invalidation of the data owned by each abandoned state.
package mathitem

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomathdoc/pkg/mml"
)

// MathItem is a single mathematical expression moving through the
// compile / typeset / insert pipeline.
//
// The item exclusively owns its compiled tree, typeset output handle, and
// side-channel data for its own lifetime. It holds non-owning references to
// its input jax and, while inserted, to the document driver. The state
// field is not synchronized: callers must not invoke two lifecycle
// operations on the same item concurrently.
type MathItem struct {
	// Math is the raw source text. Immutable after construction.
	Math string

	// InputJax compiles Math into the internal tree.
	InputJax InputJax

	// Display is the rendering mode. DisplayUnresolved selects the
	// escaped render path at typeset time.
	Display Display

	// Start and End locate the expression in the host document. The
	// delimiters recorded on them allow a restore to reproduce the
	// original text exactly.
	Start, End Location

	// Root is the compiled internal tree, nil until Compile succeeds.
	// Rollback does not clear it (see TransitionTo).
	Root *mml.Node

	// TypesetRoot is the rendered output handle, nil until Typeset
	// succeeds. Rollback does not clear it (see TransitionTo).
	TypesetRoot any

	// Metrics are the environment parameters captured for the current
	// typeset pass.
	Metrics Metrics

	// BBox is the renderer-owned bounding box, reset to empty when the
	// item leaves the typeset state.
	BBox BBox

	// InputData holds jax-private state, keyed by jax name. Reset to
	// empty when the item leaves the compiled state.
	InputData DataMap

	// OutputData holds renderer-private state, keyed by renderer name.
	// Reset to empty when the item leaves the typeset state.
	OutputData DataMap

	// state is the single source of truth for what has been computed.
	state State

	// doc is the non-owning document reference, held only while inserted.
	doc Document
}

// NewItem promotes a ProtoItem into a full MathItem bound to the given
// input jax. The new item starts in StateUnprocessed with empty
// side-channel containers. The ProtoItem is consumed: later mutation of the
// item does not affect it.
func NewItem(proto ProtoItem, jax InputJax) *MathItem {
	return &MathItem{
		Math:       proto.Math,
		InputJax:   jax,
		Display:    proto.Display,
		Start:      proto.Start,
		End:        proto.End,
		BBox:       NewBBox(),
		InputData:  NewDataMap(),
		OutputData: NewDataMap(),
		state:      StateUnprocessed,
	}
}

// New creates a MathItem directly from source text, for callers that do not
// go through a scanner (e.g., rendering a single expression from a CLI
// argument).
func New(math string, jax InputJax, display Display) *MathItem {
	return NewItem(ProtoItem{Math: math, Display: display}, jax)
}

// State returns the current lifecycle state. Pure read, no side effects.
func (m *MathItem) State() State {
	return m.state
}

// Compile parses the item's source text into its internal tree using the
// bound input jax. It is a no-op when the item is already at or past
// StateCompiled, so repeated calls invoke the jax at most once.
//
// On jax failure the error is wrapped with ErrParse and returned; the state
// does not advance and Root stays nil.
func (m *MathItem) Compile(ctx context.Context, doc Document) error {
	if m.state >= StateCompiled {
		return nil
	}

	root, err := m.InputJax.Compile(ctx, m)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	m.Root = root
	m.state = StateCompiled
	return nil
}

// Typeset renders the item's compiled tree using the document's renderer.
// Items whose display mode is unresolved take the escaped path. It is a
// no-op when the item is already at or past StateTypeset.
//
// Environment metrics are captured from the document at the moment
// typesetting runs, unless the driver already supplied them via SetMetrics.
//
// On renderer failure the error is wrapped with ErrRender and returned; the
// state does not advance.
func (m *MathItem) Typeset(ctx context.Context, doc Document) error {
	if m.state >= StateTypeset {
		return nil
	}

	if m.Metrics.IsZero() {
		m.Metrics = doc.Metrics()
	}

	var (
		rendered any
		err      error
	)
	if m.Display == DisplayUnresolved {
		rendered, err = doc.Renderer().Escaped(ctx, m, doc)
	} else {
		rendered, err = doc.Renderer().Typeset(ctx, m, doc)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	m.TypesetRoot = rendered
	m.state = StateTypeset
	return nil
}

// SetMetrics records the environment parameters for the next typeset pass,
// replacing any previously captured values.
func (m *MathItem) SetMetrics(metrics Metrics) {
	m.Metrics = metrics
}

// UpdateDocument splices the typeset output into the host document over the
// item's source span. The item must be at least typeset; calling earlier
// returns ErrInvalidState. A no-op when already inserted.
//
// On success the item retains a non-owning reference to the document so
// that a later removal can undo the splice.
func (m *MathItem) UpdateDocument(doc Document) error {
	if m.state < StateTypeset {
		return fmt.Errorf("%w: updateDocument called in state %s", ErrInvalidState, m.state)
	}
	if m.state >= StateInserted {
		return nil
	}

	if err := doc.Splice(m.Start, m.End, m.TypesetRoot); err != nil {
		return fmt.Errorf("splice rendered output: %w", err)
	}

	m.doc = doc
	m.state = StateInserted
	return nil
}

// RemoveFromDocument detaches the typeset output from the host document.
// When restore is true the original source text, delimiters included, is
// put back in its place; otherwise the span is left empty. A no-op when the
// item is not inserted.
//
// Postcondition: the state is below StateInserted and the document
// reference is released.
func (m *MathItem) RemoveFromDocument(restore bool) error {
	if m.state < StateInserted {
		return nil
	}

	doc := m.doc
	m.doc = nil
	m.state = StateTypeset

	if doc == nil {
		return nil
	}

	text := ""
	if restore {
		text = m.Start.Delim + m.Math + m.End.Delim
	}
	if err := doc.Restore(m.Start, m.End, text); err != nil {
		return fmt.Errorf("restore source span: %w", err)
	}
	return nil
}

// AddEventHandlers attaches interaction handlers to the rendered output.
// It is independent of the state machine and a no-op in the base item;
// interactive drivers may wrap MathItem to hook it.
func (m *MathItem) AddEventHandlers() {}

// TransitionTo moves the item to the given state, performing cascading
// invalidation of the data owned by each state being abandoned:
//
//  1. leaving StateInserted removes the output from the document,
//     restoring the source text when restore is true;
//  2. leaving StateTypeset resets BBox and OutputData to fresh empty
//     containers;
//  3. leaving StateCompiled resets InputData to a fresh empty container.
//
// The guards are evaluated independently, in that fixed order, against the
// state held on entry, so a single call dropping from inserted to
// unprocessed performs all three cleanups. Moving forward (or to the same
// state) fires no guard and clears nothing.
//
// Root and TypesetRoot are deliberately NOT cleared: the compiled tree and
// typeset handle stay available for inspection and cheap re-typesetting
// after a logical rollback, while the derived side-channel caches are
// invalidated.
//
// The state field is set to target unconditionally, even if the document
// removal fails; the removal error is returned alongside the new state.
func (m *MathItem) TransitionTo(target State, restore bool) (State, error) {
	cur := m.state
	var err error

	if target < StateInserted && cur >= StateInserted {
		err = m.RemoveFromDocument(restore)
	}
	if target < StateTypeset && cur >= StateTypeset {
		m.BBox = NewBBox()
		m.OutputData = NewDataMap()
	}
	if target < StateCompiled && cur >= StateCompiled {
		m.InputData = NewDataMap()
	}

	m.state = target
	return m.state, err
}

// Reset rolls the item back to StateUnprocessed, restoring the original
// source text in the document when restore is true.
func (m *MathItem) Reset(restore bool) error {
	_, err := m.TransitionTo(StateUnprocessed, restore)
	return err
}
