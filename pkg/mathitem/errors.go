package mathitem

import "errors"

// Lifecycle error categories.
//
// ErrParse and ErrRender wrap collaborator failures without swallowing them:
// the original error remains reachable through errors.Is / errors.Unwrap.
// ErrInvalidState is the only error the lifecycle core raises on its own and
// indicates a programming error in the calling driver, not a recoverable
// per-expression condition.
var (
	// ErrParse indicates the input jax rejected the source text.
	ErrParse = errors.New("parse error")

	// ErrRender indicates the renderer could not produce output for a
	// compiled tree.
	ErrRender = errors.New("render error")

	// ErrInvalidState indicates a lifecycle operation was invoked out of
	// the required state order.
	ErrInvalidState = errors.New("invalid lifecycle state")
)
