package mml

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// Walk performs a pre-order traversal of the tree starting at root.
// If walkFunc returns a non-nil error, the walk stops immediately and
// returns that error.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		return err
	}

	for _, child := range root.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// Text collects the literal text of all token nodes under root in
// document order. Useful for diagnostics and fallback rendering.
func Text(root *Node) string {
	var out []byte
	_ = Walk(root, func(n *Node) error {
		if n.IsToken() {
			out = append(out, n.Text...)
		}
		return nil
	})
	return string(out)
}
