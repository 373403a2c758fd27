package mml_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/gomathdoc/pkg/mml"
)

func TestAppendChild(t *testing.T) {
	t.Parallel()

	row := mml.NewNode(mml.KindRow)
	x := mml.NewToken(mml.KindIdentifier, "x")
	plus := mml.NewToken(mml.KindOperator, "+")

	row.AppendChild(x).AppendChild(plus)

	if row.ChildCount() != 2 {
		t.Fatalf("ChildCount = %d, want 2", row.ChildCount())
	}
	if x.Parent != row {
		t.Error("child parent pointer not set")
	}
	if row.Child(0) != x || row.Child(1) != plus {
		t.Error("children out of order")
	}
	if row.Child(2) != nil || row.Child(-1) != nil {
		t.Error("out-of-range Child should be nil")
	}
}

func TestAppendChildNil(t *testing.T) {
	t.Parallel()

	row := mml.NewNode(mml.KindRow)
	row.AppendChild(nil)

	if row.HasChildren() {
		t.Error("nil child should be ignored")
	}
}

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind mml.NodeKind
		want bool
	}{
		{mml.KindIdentifier, true},
		{mml.KindNumber, true},
		{mml.KindOperator, true},
		{mml.KindText, true},
		{mml.KindRow, false},
		{mml.KindFrac, false},
		{mml.KindMath, false},
	}

	for _, tc := range cases {
		n := mml.NewNode(tc.kind)
		if got := n.IsToken(); got != tc.want {
			t.Errorf("IsToken(%v) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	n := mml.NewToken(mml.KindOperator, "+")
	if n.Attr("form") != "" {
		t.Error("unset attribute should be empty")
	}

	n.SetAttr("form", "infix")
	if n.Attr("form") != "infix" {
		t.Errorf("Attr(form) = %q, want infix", n.Attr("form"))
	}
}

func TestWalkOrder(t *testing.T) {
	t.Parallel()

	// x^2 as msup(mi(x), mn(2))
	sup := mml.NewNode(mml.KindSup)
	sup.AppendChild(mml.NewToken(mml.KindIdentifier, "x"))
	sup.AppendChild(mml.NewToken(mml.KindNumber, "2"))
	root := mml.NewNode(mml.KindMath)
	root.AppendChild(sup)

	var kinds []mml.NodeKind
	err := mml.Walk(root, func(n *mml.Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}

	want := []mml.NodeKind{mml.KindMath, mml.KindSup, mml.KindIdentifier, mml.KindNumber}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestWalkStopsOnError(t *testing.T) {
	t.Parallel()

	root := mml.NewNode(mml.KindRow)
	root.AppendChild(mml.NewToken(mml.KindIdentifier, "a"))
	root.AppendChild(mml.NewToken(mml.KindIdentifier, "b"))

	stop := errors.New("stop")
	visited := 0
	err := mml.Walk(root, func(_ *mml.Node) error {
		visited++
		if visited == 2 {
			return stop
		}
		return nil
	})

	if !errors.Is(err, stop) {
		t.Fatalf("Walk error = %v, want stop", err)
	}
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestTextCollection(t *testing.T) {
	t.Parallel()

	frac := mml.NewNode(mml.KindFrac)
	frac.AppendChild(mml.NewToken(mml.KindIdentifier, "a"))
	frac.AppendChild(mml.NewToken(mml.KindNumber, "2"))

	if got := mml.Text(frac); got != "a2" {
		t.Errorf("Text = %q, want a2", got)
	}
	if got := mml.Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
}
