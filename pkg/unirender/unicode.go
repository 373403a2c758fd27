package unirender

import "strings"

// superscripts maps runes to their Unicode superscript forms.
//
//nolint:gochecknoglobals // Read-only translation tables
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

// subscripts maps runes to their Unicode subscript forms.
//
//nolint:gochecknoglobals // Read-only translation tables
var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
}

// toScript translates s through the given table. The second result is false
// if any rune has no translation, in which case the caller should fall back
// to the caret/underscore form.
func toScript(s string, table map[rune]rune) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		t, ok := table[r]
		if !ok {
			return "", false
		}
		b.WriteRune(t)
	}
	return b.String(), true
}

// spacedOperators are operators set off with spaces from their operands.
//
//nolint:gochecknoglobals // Read-only translation tables
var spacedOperators = map[string]bool{
	"+": true, "-": true, "=": true, "<": true, ">": true,
	"±": true, "∓": true, "×": true, "÷": true,
	"≤": true, "≥": true, "≠": true, "≈": true, "≡": true,
	"∼": true, "∝": true, "≪": true, "≫": true,
	"→": true, "←": true, "↔": true, "⇒": true, "⇐": true, "⇔": true, "↦": true,
	"∈": true, "∉": true, "⊂": true, "⊆": true, "⊃": true, "⊇": true,
	"∪": true, "∩": true, "∖": true, "∧": true, "∨": true, "⟹": true,
}
