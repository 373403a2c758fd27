// Package langdetect classifies candidate documents for rendering.
// It uses go-enry to distinguish the text formats gomathdoc can process
// (Markdown, TeX, plain text) from source code or binary files that happen
// to sit under a watched extension.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Kind is the detected document kind.
type Kind string

const (
	// KindMarkdown is a Markdown document: math is scanned outside code
	// regions.
	KindMarkdown Kind = "markdown"

	// KindTeX is a TeX or LaTeX document: the whole text is scanned.
	KindTeX Kind = "tex"

	// KindText is plain text, scanned like TeX.
	KindText Kind = "text"

	// KindOther is anything gomathdoc should not touch: source code,
	// binary data, structured formats.
	KindOther Kind = "other"
)

// Renderable reports whether documents of this kind should be processed.
func (k Kind) Renderable() bool {
	return k == KindMarkdown || k == KindTeX || k == KindText
}

// DetectFile classifies a file from its path and content. The filename is
// authoritative when enry recognizes it; the content decides otherwise.
func DetectFile(path string, content []byte) Kind {
	if enry.IsBinary(content) {
		return KindOther
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return KindMarkdown
	case ".tex", ".latex", ".ltx":
		return KindTeX
	case ".txt":
		return KindText
	}

	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return normalize(lang)
	}

	return Detect(content)
}

// Detect classifies content with no filename available. Returns KindOther
// when the content looks like something other than prose.
func Detect(content []byte) Kind {
	if len(content) == 0 {
		return KindText
	}
	if enry.IsBinary(content) {
		return KindOther
	}

	// Shebang means a script, never a document.
	if _, safe := enry.GetLanguageByShebang(content); safe {
		return KindOther
	}

	if kind := detectByPattern(content); kind != "" {
		return kind
	}

	// Non-binary content without format markers is treated as prose.
	return KindText
}

// detectByPattern checks for format markers that are highly indicative.
func detectByPattern(content []byte) Kind {
	trimmed := bytes.TrimSpace(content)

	if kind := detectTeX(trimmed); kind != "" {
		return kind
	}
	if kind := detectMarkdown(trimmed); kind != "" {
		return kind
	}
	return ""
}

// detectTeX checks for TeX preamble and environment commands.
func detectTeX(trimmed []byte) Kind {
	if bytes.Contains(trimmed, []byte(`\documentclass`)) ||
		bytes.Contains(trimmed, []byte(`\usepackage`)) ||
		bytes.Contains(trimmed, []byte(`\begin{document}`)) ||
		bytes.Contains(trimmed, []byte(`\section{`)) {
		return KindTeX
	}
	return ""
}

// detectMarkdown checks for structural Markdown markers by line.
func detectMarkdown(trimmed []byte) Kind {
	lines := bytes.Split(trimmed, []byte("\n"))
	markers := 0

	for _, line := range lines {
		line = bytes.TrimSpace(line)
		switch {
		case bytes.HasPrefix(line, []byte("# ")),
			bytes.HasPrefix(line, []byte("## ")),
			bytes.HasPrefix(line, []byte("### ")):
			markers++
		case bytes.HasPrefix(line, []byte("```")):
			markers++
		case bytes.HasPrefix(line, []byte("- ")),
			bytes.HasPrefix(line, []byte("* ")):
			markers++
		case bytes.Contains(line, []byte("](")):
			markers++
		}
	}

	if markers >= 2 {
		return KindMarkdown
	}
	return ""
}

// normalize maps an enry language name to a document kind.
func normalize(lang string) Kind {
	switch strings.ToLower(lang) {
	case "markdown":
		return KindMarkdown
	case "tex", "latex":
		return KindTeX
	case "text":
		return KindText
	default:
		return KindOther
	}
}
