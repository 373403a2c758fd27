package mathitem_test

import (
	"testing"

	"github.com/yaklabco/gomathdoc/pkg/mathitem"
)

func TestNewProtoItem(t *testing.T) {
	t.Parallel()

	proto := mathitem.NewProtoItem("\\(", "a+b", "\\)", 2, 10, 17, mathitem.DisplayInline)

	if proto.Math != "a+b" {
		t.Errorf("Math = %q", proto.Math)
	}
	if proto.N != 2 {
		t.Errorf("N = %d, want 2", proto.N)
	}
	if proto.Start.N != 10 || proto.End.N != 17 {
		t.Errorf("offsets = [%d, %d), want [10, 17)", proto.Start.N, proto.End.N)
	}
	if proto.Start.Delim != "\\(" || proto.End.Delim != "\\)" {
		t.Error("delimiters must be recorded on the boundary locations")
	}
	if proto.Display != mathitem.DisplayInline {
		t.Errorf("Display = %v, want inline", proto.Display)
	}
}

func TestProtoItemDefaultsUnresolved(t *testing.T) {
	t.Parallel()

	var proto mathitem.ProtoItem
	if proto.Display != mathitem.DisplayUnresolved {
		t.Error("zero-value display must be unresolved")
	}
}

func TestProtoItemSource(t *testing.T) {
	t.Parallel()

	proto := mathitem.NewProtoItem("$$", "E=mc^2", "$$", 0, 0, 10, mathitem.DisplayBlock)
	if got := proto.Source(); got != "$$E=mc^2$$" {
		t.Errorf("Source = %q", got)
	}
}

func TestLocationKinds(t *testing.T) {
	t.Parallel()

	indexBased := mathitem.Location{N: 4}
	if indexBased.IsNodeBased() {
		t.Error("location without node must be index-based")
	}

	type fakeNode struct{ id int }
	nodeBased := mathitem.Location{Node: &fakeNode{id: 1}, I: 2}
	if !nodeBased.IsNodeBased() {
		t.Error("location with node must be node-based")
	}
}

func TestNoOffsetValidation(t *testing.T) {
	t.Parallel()

	// Offsets are trusted from the caller, StaticRange-style: out-of-range
	// values must be stored verbatim, not rejected.
	proto := mathitem.NewProtoItem("$", "x", "$", 0, 500, 1000, mathitem.DisplayInline)
	if proto.Start.N != 500 || proto.End.N != 1000 {
		t.Error("offsets must be stored without validation")
	}
}
