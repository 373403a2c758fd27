package find_test

import (
	"testing"

	"github.com/yaklabco/gomathdoc/pkg/find"
	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

func TestFindInlineDollar(t *testing.T) {
	t.Parallel()

	f := find.New()
	items := f.FindString(0, "see $x^2$ here")

	if len(items) != 1 {
		t.Fatalf("found %d items, want 1", len(items))
	}
	item := items[0]
	if item.Math != "x^2" {
		t.Errorf("Math = %q, want x^2", item.Math)
	}
	if item.Open != "$" || item.Close != "$" {
		t.Errorf("delims = %q %q", item.Open, item.Close)
	}
	if item.Start.N != 4 || item.End.N != 9 {
		t.Errorf("span = [%d, %d), want [4, 9)", item.Start.N, item.End.N)
	}
	if item.Display != mathitem.DisplayInline {
		t.Errorf("Display = %v, want inline", item.Display)
	}
}

func TestFindDisplayDollars(t *testing.T) {
	t.Parallel()

	f := find.New()
	items := f.FindString(0, "$$E=mc^2$$")

	if len(items) != 1 {
		t.Fatalf("found %d items, want 1", len(items))
	}
	if items[0].Math != "E=mc^2" {
		t.Errorf("Math = %q", items[0].Math)
	}
	if items[0].Display != mathitem.DisplayBlock {
		t.Errorf("Display = %v, want block", items[0].Display)
	}
	if items[0].Start.N != 0 || items[0].End.N != 10 {
		t.Errorf("span = [%d, %d), want [0, 10)", items[0].Start.N, items[0].End.N)
	}
}

func TestFindBackslashDelimiters(t *testing.T) {
	t.Parallel()

	f := find.New()
	items := f.FindString(0, `inline \(a+b\) and block \[c\]`)

	if len(items) != 2 {
		t.Fatalf("found %d items, want 2", len(items))
	}
	if items[0].Math != "a+b" || items[0].Display != mathitem.DisplayInline {
		t.Errorf("first = %q %v", items[0].Math, items[0].Display)
	}
	if items[1].Math != "c" || items[1].Display != mathitem.DisplayBlock {
		t.Errorf("second = %q %v", items[1].Math, items[1].Display)
	}
}

func TestFindMultipleMatches(t *testing.T) {
	t.Parallel()

	f := find.New()
	items := f.FindString(0, "$a$ text $b$ more $c$")

	if len(items) != 3 {
		t.Fatalf("found %d items, want 3", len(items))
	}
	for i, want := range []string{"a", "b", "c"} {
		if items[i].Math != want {
			t.Errorf("item %d = %q, want %q", i, items[i].Math, want)
		}
	}
}

func TestFindEscapedDollarIgnored(t *testing.T) {
	t.Parallel()

	f := find.New()

	if items := f.FindString(0, `costs \$5 and \$10`); len(items) != 0 {
		t.Errorf("found %d items in escaped text, want 0", len(items))
	}

	// Escaped dollar inside an expression does not close it.
	items := f.FindString(0, `$a \$ b$`)
	if len(items) != 1 {
		t.Fatalf("found %d items, want 1", len(items))
	}
	if items[0].Math != `a \$ b` {
		t.Errorf("Math = %q", items[0].Math)
	}
}

func TestFindUnclosedTolerated(t *testing.T) {
	t.Parallel()

	f := find.New()
	items := f.FindString(0, "broken $x and fine $y$ later")

	// The unclosed $x swallows up to the next dollar, so the surviving
	// match is what follows; scanning must not loop or panic.
	if len(items) != 1 {
		t.Fatalf("found %d items, want 1", len(items))
	}
}

func TestFindEmptyContentNotMatched(t *testing.T) {
	t.Parallel()

	f := find.New()
	if items := f.FindString(0, "a $$ b"); len(items) != 0 {
		t.Errorf("found %d items in empty pair, want 0", len(items))
	}
}

func TestFindStringsRecordsIndex(t *testing.T) {
	t.Parallel()

	f := find.New()
	items := f.FindStrings([]string{"plain", "$a$", "also plain", "$b$ and $c$"})

	if len(items) != 3 {
		t.Fatalf("found %d items, want 3", len(items))
	}
	if items[0].N != 1 {
		t.Errorf("first item N = %d, want 1", items[0].N)
	}
	if items[1].N != 3 || items[2].N != 3 {
		t.Errorf("later items N = %d, %d, want 3, 3", items[1].N, items[2].N)
	}
}

func TestFindCustomDelimiters(t *testing.T) {
	t.Parallel()

	f := find.New(find.Delimiters{Open: "@@", Close: "@@", Display: mathitem.DisplayUnresolved})
	items := f.FindString(0, "weird @@x@@ pair")

	if len(items) != 1 {
		t.Fatalf("found %d items, want 1", len(items))
	}
	if items[0].Display != mathitem.DisplayUnresolved {
		t.Errorf("Display = %v, want unresolved", items[0].Display)
	}
	if items[0].Math != "x" {
		t.Errorf("Math = %q", items[0].Math)
	}
}

func TestFindRoundTripOffsets(t *testing.T) {
	t.Parallel()

	// The recorded span must reproduce the original source exactly.
	src := "start $$a+b$$ middle \\(x\\) end"
	f := find.New()
	for _, item := range f.FindString(0, src) {
		if got := src[item.Start.N:item.End.N]; got != item.Source() {
			t.Errorf("span %q != Source() %q", got, item.Source())
		}
	}
}
