package textex

import "unicode/utf8"

// tokenKind classifies a lexical token in TeX math source.
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokLetter
	tokNumber
	tokOperator
	tokCommand // \name or \<single char>
	tokSup     // ^
	tokSub     // _
	tokLBrace  // {
	tokRBrace  // }
	tokLBracket
	tokRBracket
)

// token is a single lexical token with its byte offset in the source.
type token struct {
	kind tokenKind
	text string
	pos  int
}

// scanner produces tokens from TeX math source. Whitespace is not
// significant in math mode and is skipped.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

// next returns the next token, or a tokEOF token at end of input.
func (s *scanner) next() token {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return token{kind: tokEOF, pos: s.pos}
	}

	start := s.pos
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])

	switch {
	case r == '\\':
		return s.scanCommand(start)
	case r == '^':
		s.pos += size
		return token{kind: tokSup, text: "^", pos: start}
	case r == '_':
		s.pos += size
		return token{kind: tokSub, text: "_", pos: start}
	case r == '{':
		s.pos += size
		return token{kind: tokLBrace, text: "{", pos: start}
	case r == '}':
		s.pos += size
		return token{kind: tokRBrace, text: "}", pos: start}
	case r == '[':
		s.pos += size
		return token{kind: tokLBracket, text: "[", pos: start}
	case r == ']':
		s.pos += size
		return token{kind: tokRBracket, text: "]", pos: start}
	case isDigit(r):
		return s.scanNumber(start)
	case isLetter(r):
		// TeX treats each letter as its own identifier in math mode.
		s.pos += size
		return token{kind: tokLetter, text: s.src[start:s.pos], pos: start}
	default:
		s.pos += size
		return token{kind: tokOperator, text: s.src[start:s.pos], pos: start}
	}
}

// scanCommand scans a control sequence: backslash followed by a letter run,
// or by a single non-letter character (e.g. \{ or \\).
func (s *scanner) scanCommand(start int) token {
	s.pos++ // consume backslash
	if s.pos >= len(s.src) {
		return token{kind: tokCommand, text: "", pos: start}
	}

	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if !isLetter(r) {
		s.pos += size
		return token{kind: tokCommand, text: s.src[start+1 : s.pos], pos: start}
	}

	for s.pos < len(s.src) {
		r, size = utf8.DecodeRuneInString(s.src[s.pos:])
		if !isLetter(r) {
			break
		}
		s.pos += size
	}
	return token{kind: tokCommand, text: s.src[start+1 : s.pos], pos: start}
}

// scanNumber scans an integer or decimal literal.
func (s *scanner) scanNumber(start int) token {
	for s.pos < len(s.src) && isDigit(rune(s.src[s.pos])) {
		s.pos++
	}
	// Decimal point only when followed by another digit.
	if s.pos+1 < len(s.src) && s.src[s.pos] == '.' && isDigit(rune(s.src[s.pos+1])) {
		s.pos++
		for s.pos < len(s.src) && isDigit(rune(s.src[s.pos])) {
			s.pos++
		}
	}
	return token{kind: tokNumber, text: s.src[start:s.pos], pos: start}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
