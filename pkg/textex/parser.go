// Package textex provides a mathitem.InputJax that compiles a practical TeX
// subset into the internal math tree.
//
// The subset covers token atoms (letters, numbers, operators), brace groups,
// super- and subscripts, \frac, \sqrt (with optional index), \text, and a
// table of symbol macros (Greek letters, arrows, large operators, function
// names). Unknown macros and unbalanced input are reported as parse errors
// with the byte offset of the offending token.
package textex

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomathdoc/pkg/mathitem"
	"github.com/yaklabco/gomathdoc/pkg/mml"
)

// Jax implements mathitem.InputJax for TeX source.
type Jax struct{}

// New creates a new TeX input jax.
func New() *Jax {
	return &Jax{}
}

// Name identifies this jax in item data maps.
func (j *Jax) Name() string {
	return "tex"
}

// Stats is the jax-private record stored in an item's InputData after a
// successful compile.
type Stats struct {
	// Nodes is the number of tree nodes produced.
	Nodes int
}

// Compile parses the item's source text into a math tree. The resulting
// root is a KindMath node; block-mode items carry display="block" on it.
func (j *Jax) Compile(ctx context.Context, item *mathitem.MathItem) (*mml.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compile cancelled: %w", err)
	}

	p := newParser(item.Math)
	body, err := p.parseSequence(tokEOF)
	if err != nil {
		return nil, err
	}

	root := mml.NewNode(mml.KindMath)
	if item.Display == mathitem.DisplayBlock {
		root.SetAttr("display", "block")
	}
	root.AppendChild(body)

	nodes := 0
	_ = mml.Walk(root, func(_ *mml.Node) error {
		nodes++
		return nil
	})
	if item.InputData != nil {
		item.InputData[j.Name()] = Stats{Nodes: nodes}
	}

	return root, nil
}

// parser is a recursive-descent parser over the token scanner, with a
// single token of lookahead.
type parser struct {
	s      *scanner
	tok    token
	peeked bool
}

func newParser(src string) *parser {
	return &parser{s: newScanner(src)}
}

func (p *parser) next() token {
	if p.peeked {
		p.peeked = false
		return p.tok
	}
	return p.s.next()
}

func (p *parser) peek() token {
	if !p.peeked {
		p.tok = p.s.next()
		p.peeked = true
	}
	return p.tok
}

// parseSequence parses atoms (with their scripts) until the given stop
// token, which is left unconsumed. A single-element sequence collapses to
// the element itself; anything else is wrapped in a row.
func (p *parser) parseSequence(stop tokenKind) (*mml.Node, error) {
	row := mml.NewNode(mml.KindRow)

	for {
		t := p.peek()
		if t.kind == stop {
			break
		}
		if t.kind == tokEOF {
			return nil, fmt.Errorf("unexpected end of input at offset %d: missing %q", t.pos, closingDelim(stop))
		}

		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		atom, err = p.parseScripts(atom)
		if err != nil {
			return nil, err
		}
		row.AppendChild(atom)
	}

	if row.ChildCount() == 1 {
		return row.Child(0), nil
	}
	return row, nil
}

// closingDelim is the literal text of the stop token, for unterminated
// sequence errors.
func closingDelim(stop tokenKind) string {
	if stop == tokRBracket {
		return "]"
	}
	return "}"
}

// parseAtom parses a single atom: a token element, a brace group, or a
// structural macro.
func (p *parser) parseAtom() (*mml.Node, error) {
	t := p.next()

	switch t.kind {
	case tokLetter:
		return mml.NewToken(mml.KindIdentifier, t.text), nil
	case tokNumber:
		return mml.NewToken(mml.KindNumber, t.text), nil
	case tokOperator:
		return mml.NewToken(mml.KindOperator, t.text), nil
	case tokLBracket:
		return mml.NewToken(mml.KindOperator, "["), nil
	case tokRBracket:
		return mml.NewToken(mml.KindOperator, "]"), nil
	case tokLBrace:
		group, err := p.parseSequence(tokRBrace)
		if err != nil {
			return nil, err
		}
		p.next() // consume closing brace
		return group, nil
	case tokRBrace:
		return nil, fmt.Errorf("unexpected %q at offset %d", "}", t.pos)
	case tokSup, tokSub:
		return nil, fmt.Errorf("missing base before %q at offset %d", t.text, t.pos)
	case tokCommand:
		return p.parseCommand(t)
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of input at offset %d", t.pos)
	default:
		return nil, fmt.Errorf("unexpected token %q at offset %d", t.text, t.pos)
	}
}

// parseCommand handles a control sequence: structural macros first, then
// the symbol table.
func (p *parser) parseCommand(t token) (*mml.Node, error) {
	switch t.text {
	case "frac":
		num, err := p.parseArg(t)
		if err != nil {
			return nil, err
		}
		den, err := p.parseArg(t)
		if err != nil {
			return nil, err
		}
		frac := mml.NewNode(mml.KindFrac)
		frac.AppendChild(num)
		frac.AppendChild(den)
		return frac, nil

	case "sqrt":
		return p.parseSqrt(t)

	case "text":
		return p.parseText(t)
	}

	if n := expand(t.text); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("unknown macro \\%s at offset %d", t.text, t.pos)
}

// parseSqrt parses \sqrt{x} or \sqrt[n]{x}.
func (p *parser) parseSqrt(cmd token) (*mml.Node, error) {
	if p.peek().kind == tokLBracket {
		p.next() // consume [
		index, err := p.parseSequence(tokRBracket)
		if err != nil {
			return nil, err
		}
		p.next() // consume ]

		radicand, err := p.parseArg(cmd)
		if err != nil {
			return nil, err
		}
		root := mml.NewNode(mml.KindRoot)
		root.AppendChild(radicand)
		root.AppendChild(index)
		return root, nil
	}

	radicand, err := p.parseArg(cmd)
	if err != nil {
		return nil, err
	}
	sqrt := mml.NewNode(mml.KindSqrt)
	sqrt.AppendChild(radicand)
	return sqrt, nil
}

// parseText parses \text{...}, taking the group content as literal text.
func (p *parser) parseText(cmd token) (*mml.Node, error) {
	open := p.next()
	if open.kind != tokLBrace {
		return nil, fmt.Errorf("\\%s requires a braced argument at offset %d", cmd.text, open.pos)
	}

	// Read raw bytes up to the matching brace; nested braces are allowed.
	depth := 1
	start := p.s.pos
	for p.s.pos < len(p.s.src) {
		switch p.s.src[p.s.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				text := p.s.src[start:p.s.pos]
				p.s.pos++
				return mml.NewToken(mml.KindText, text), nil
			}
		}
		p.s.pos++
	}
	return nil, fmt.Errorf("unterminated \\%s argument at offset %d", cmd.text, open.pos)
}

// parseArg parses a required macro argument: a brace group or a single atom.
func (p *parser) parseArg(cmd token) (*mml.Node, error) {
	t := p.peek()
	if t.kind == tokEOF {
		return nil, fmt.Errorf("missing argument for \\%s at offset %d", cmd.text, t.pos)
	}
	return p.parseAtom()
}

// parseScripts attaches any ^ and _ scripts to base. A subscript and a
// superscript on the same base combine into a single sub-sup node with the
// children ordered base, subscript, superscript.
func (p *parser) parseScripts(base *mml.Node) (*mml.Node, error) {
	var sub, sup *mml.Node

	for {
		t := p.peek()
		switch t.kind {
		case tokSup:
			if sup != nil {
				return nil, fmt.Errorf("double superscript at offset %d", t.pos)
			}
			p.next()
			script, err := p.parseArg(t)
			if err != nil {
				return nil, err
			}
			sup = script
		case tokSub:
			if sub != nil {
				return nil, fmt.Errorf("double subscript at offset %d", t.pos)
			}
			p.next()
			script, err := p.parseArg(t)
			if err != nil {
				return nil, err
			}
			sub = script
		default:
			return attachScripts(base, sub, sup), nil
		}
	}
}

func attachScripts(base, sub, sup *mml.Node) *mml.Node {
	switch {
	case sub != nil && sup != nil:
		n := mml.NewNode(mml.KindSubSup)
		n.AppendChild(base)
		n.AppendChild(sub)
		n.AppendChild(sup)
		return n
	case sup != nil:
		n := mml.NewNode(mml.KindSup)
		n.AppendChild(base)
		n.AppendChild(sup)
		return n
	case sub != nil:
		n := mml.NewNode(mml.KindSub)
		n.AppendChild(base)
		n.AppendChild(sub)
		return n
	default:
		return base
	}
}
