package mathdoc

import (
	"strings"
	"testing"
)

func TestMarkdownFragmentsReproduceSource(t *testing.T) {
	t.Parallel()

	const source = "Euler: $e^2$.\n\n```\nprice = $100\n```\n\nuse `$y$` here\n"
	doc := NewFromMarkdown(source, Options{})

	var b strings.Builder
	for _, f := range doc.Fragments() {
		b.WriteString(f.Text)
	}
	if b.String() != source {
		t.Fatalf("fragments reassemble to %q", b.String())
	}
}

func TestMarkdownMasksFencedCode(t *testing.T) {
	t.Parallel()

	const source = "Euler: $e^2$.\n\n```\nprice = $100\n```\n"
	doc := NewFromMarkdown(source, Options{})
	res := render(t, doc)

	if res.Found != 1 {
		t.Fatalf("found %d expressions, want 1", res.Found)
	}
	got := doc.Text()
	if !strings.Contains(got, "Euler: e².") {
		t.Fatalf("Text() = %q", got)
	}
	if !strings.Contains(got, "price = $100") {
		t.Fatalf("code block altered: %q", got)
	}
}

func TestMarkdownMasksInlineCode(t *testing.T) {
	t.Parallel()

	const source = "run `$PATH$` then $x^2$\n"
	doc := NewFromMarkdown(source, Options{})
	res := render(t, doc)

	if res.Found != 1 {
		t.Fatalf("found %d expressions, want 1", res.Found)
	}
	got := doc.Text()
	if !strings.Contains(got, "`$PATH$`") {
		t.Fatalf("code span altered: %q", got)
	}
	if !strings.Contains(got, "x²") {
		t.Fatalf("expression not rendered: %q", got)
	}
}

func TestMarkdownMasksIndentedCode(t *testing.T) {
	t.Parallel()

	const source = "text $a+b$\n\n    cost = $5\n\nmore\n"
	doc := NewFromMarkdown(source, Options{})
	res := render(t, doc)

	if res.Found != 1 {
		t.Fatalf("found %d expressions, want 1", res.Found)
	}
	if got := doc.Text(); !strings.Contains(got, "cost = $5") {
		t.Fatalf("indented code altered: %q", got)
	}
}

func TestMarkdownNoCode(t *testing.T) {
	t.Parallel()

	doc := NewFromMarkdown("plain $x^2$ paragraph\n", Options{})
	frags := doc.Fragments()
	if len(frags) != 1 || !frags[0].Scannable {
		t.Fatalf("fragments = %+v", frags)
	}

	render(t, doc)
	if got := doc.Text(); got != "plain x² paragraph\n" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestMergeSpans(t *testing.T) {
	t.Parallel()

	got := mergeSpans([]span{{10, 20}, {2, 5}, {18, 25}, {5, 7}})
	want := []span{{2, 7}, {10, 25}}
	if len(got) != len(want) {
		t.Fatalf("mergeSpans = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mergeSpans = %v, want %v", got, want)
		}
	}
}
