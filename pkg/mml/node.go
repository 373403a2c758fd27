// Package mml provides the internal tree representation for compiled
// mathematical expressions. It is the exchange format between input jaxes
// (which produce trees from source text) and renderers (which consume trees
// to produce output), loosely modeled on presentation MathML.
package mml

//go:generate stringer -type=NodeKind -trimprefix=Kind

// NodeKind classifies the type of a math tree node.
type NodeKind uint16

// Node kinds for the supported presentation elements.
const (
	KindMath NodeKind = iota

	// Grouping.
	KindRow

	// Token elements.
	KindIdentifier // mi
	KindNumber     // mn
	KindOperator   // mo
	KindText       // mtext

	// Layout schemata.
	KindSup     // msup: base, superscript
	KindSub     // msub: base, subscript
	KindSubSup  // msubsup: base, subscript, superscript
	KindFrac    // mfrac: numerator, denominator
	KindSqrt    // msqrt: radicand
	KindRoot    // mroot: radicand, index
	KindError   // merror: wraps unparseable content
)

// Node represents a single node in a compiled math tree.
// Token-kind nodes carry Text; layout-kind nodes carry Children in the
// positional order documented on the kind constants.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Text is the literal content for token-kind nodes (mi, mn, mo, mtext).
	// Empty for layout nodes.
	Text string

	// Attrs holds optional presentation attributes (e.g., "form", "stretchy").
	Attrs map[string]string

	// Parent is the containing node, nil for the root.
	Parent *Node

	// Children are the child nodes in positional order.
	Children []*Node
}

// NewNode creates a node of the given kind with no text or children.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewToken creates a token-kind node carrying literal text.
func NewToken(kind NodeKind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// AppendChild appends child to n and sets its parent pointer.
// A nil child is ignored.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil {
		return n
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return n
}

// IsToken returns true if this is a token-kind node (carries text).
func (n *Node) IsToken() bool {
	switch n.Kind {
	case KindIdentifier, KindNumber, KindOperator, KindText:
		return true
	default:
		return false
	}
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.Children)
}

// Child returns the i-th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// SetAttr sets a presentation attribute, allocating the map on first use.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// Attr returns the value of a presentation attribute, or "" if unset.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}
