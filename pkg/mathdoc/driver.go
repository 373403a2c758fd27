package mathdoc

import (
	"context"
	"errors"

	"github.com/yaklabco/gomathdoc/pkg/find"
	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

// ItemError records one expression that failed a stage. The item is left
// in the state it reached; the pass continues with the remaining items.
type ItemError struct {
	// Item is the failed expression.
	Item *mathitem.MathItem

	// Err is the stage error, wrapping mathitem.ErrParse or
	// mathitem.ErrRender.
	Err error
}

// Result summarizes one rendering pass over a document.
type Result struct {
	// Found is the number of expressions located.
	Found int

	// Rendered is the number of expressions inserted into the document.
	Rendered int

	// Failed is the number of expressions that failed compile or typeset.
	Failed int

	// Errors holds one entry per failed expression, in document order.
	Errors []ItemError
}

// FindMath scans the document's scannable fragments for delimited math and
// records the found items. A nil finder uses the default delimiter pairs.
// FindMath is idempotent: a second call is a no-op.
func (d *Document) FindMath(finder *find.Finder) []*mathitem.MathItem {
	if d.found {
		return d.items
	}
	if finder == nil {
		finder = DefaultFinder()
	}
	for n, f := range d.fragments {
		if !f.Scannable {
			continue
		}
		for _, proto := range finder.FindString(n, f.Text) {
			d.items = append(d.items, mathitem.NewItem(proto, d.jax))
		}
	}
	d.found = true
	return d.items
}

// Compile advances every found item to the compiled state. Items that fail
// to parse are skipped and reported; the rest of the pass is unaffected.
func (d *Document) Compile(ctx context.Context) []ItemError {
	var errs []ItemError
	for _, item := range d.items {
		if err := item.Compile(ctx, d); err != nil {
			errs = append(errs, ItemError{Item: item, Err: err})
		}
	}
	return errs
}

// Typeset advances every compiled item to the typeset state. Uncompiled
// items (parse failures from an earlier stage) are left alone rather than
// reported twice.
func (d *Document) Typeset(ctx context.Context) []ItemError {
	var errs []ItemError
	for _, item := range d.items {
		if item.State() < mathitem.StateCompiled {
			continue
		}
		if err := item.Typeset(ctx, d); err != nil {
			errs = append(errs, ItemError{Item: item, Err: err})
		}
	}
	return errs
}

// UpdateDocument splices every typeset item's output into the document.
func (d *Document) UpdateDocument() []ItemError {
	var errs []ItemError
	for _, item := range d.items {
		if item.State() < mathitem.StateTypeset {
			continue
		}
		if err := item.UpdateDocument(d); err != nil {
			errs = append(errs, ItemError{Item: item, Err: err})
		}
	}
	return errs
}

// Render runs the full pass: find, compile, typeset, insert. Per-item
// failures do not abort the pass; they are collected in the result. The
// returned error is non-nil only for pass-level failures such as context
// cancellation.
func (d *Document) Render(ctx context.Context, finder *find.Finder) (*Result, error) {
	d.FindMath(finder)

	res := &Result{Found: len(d.items)}
	res.collect(d.Compile(ctx))
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.collect(d.Typeset(ctx))
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.collect(d.UpdateDocument())
	d.markFailed()

	for _, item := range d.items {
		if item.State() >= mathitem.StateInserted {
			res.Rendered++
		}
	}
	return res, nil
}

// markFailed splices the configured error indicator over the span of every
// expression that did not reach the inserted state. With no indicator
// configured the source text is left in place.
func (d *Document) markFailed() {
	if d.indicator == "" {
		return
	}
	for _, item := range d.items {
		if item.State() >= mathitem.StateInserted {
			continue
		}
		// Best effort: an indicator that cannot be spliced leaves the
		// source text, which is the no-indicator behavior anyway.
		_ = d.Splice(item.Start, item.End, d.indicator)
	}
}

// Rerender rolls every inserted item back to the compiled state, restoring
// its source text, and runs typeset and insert again. Use after changing
// the document's metrics or renderer parameters.
func (d *Document) Rerender(ctx context.Context) (*Result, error) {
	for _, item := range d.items {
		if item.State() <= mathitem.StateCompiled {
			continue
		}
		if _, err := item.TransitionTo(mathitem.StateCompiled, true); err != nil {
			return nil, err
		}
		item.SetMetrics(d.metrics)
	}

	res := &Result{Found: len(d.items)}
	res.collect(d.Typeset(ctx))
	if err := ctx.Err(); err != nil {
		return res, err
	}
	res.collect(d.UpdateDocument())
	d.markFailed()

	for _, item := range d.items {
		if item.State() >= mathitem.StateInserted {
			res.Rendered++
		}
	}
	return res, nil
}

// RemoveFromDocument removes every inserted item's output. With restore,
// the original delimited source reappears in its place.
func (d *Document) RemoveFromDocument(restore bool) error {
	var errs []error
	for _, item := range d.items {
		if err := item.RemoveFromDocument(restore); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetMetrics updates the document's metrics for subsequent passes. Already
// typeset items keep their captured metrics until rolled back.
func (d *Document) SetMetrics(m mathitem.Metrics) {
	d.metrics = m
}

func (r *Result) collect(errs []ItemError) {
	r.Errors = append(r.Errors, errs...)
	r.Failed += len(errs)
}
