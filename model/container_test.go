package model

import (
	"testing"

	"github.com/comcifs/gocif/value"
)

func TestValidateCode(t *testing.T) {
	if err := ValidateCode(""); err != ErrEmptyCode {
		t.Errorf("empty code: got %v, want ErrEmptyCode", err)
	}
	if err := ValidateCode("has space"); err != ErrInvalidCode {
		t.Errorf("code with space: got %v, want ErrInvalidCode", err)
	}
	if err := ValidateCode("valid_code-1"); err != nil {
		t.Errorf("valid code rejected: %v", err)
	}
}

func newNamedLoop(t *testing.T, category string, names ...string) *Loop {
	t.Helper()
	cat := category
	l, err := NewLoop(&cat, names)
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	return l
}

func TestAddLoopScalarsUniqueness(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	l1 := newNamedLoop(t, "", "_a")
	if err := b.AddLoop(l1); err != nil {
		t.Fatalf("first scalars loop rejected: %v", err)
	}
	l2 := newNamedLoop(t, "", "_b")
	if err := b.AddLoop(l2); err != ErrCategoryInUse {
		t.Errorf("second scalars loop: got %v, want ErrCategoryInUse", err)
	}
}

func TestAddLoopCategoryUniqueness(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	l1 := newNamedLoop(t, "atom_site", "_atom_site_label")
	if err := b.AddLoop(l1); err != nil {
		t.Fatalf("first categorized loop rejected: %v", err)
	}
	l2 := newNamedLoop(t, "atom_site", "_atom_site_type_symbol")
	if err := b.AddLoop(l2); err != ErrCategoryNotUnique {
		t.Errorf("duplicate category: got %v, want ErrCategoryNotUnique", err)
	}
	l3 := newNamedLoop(t, "geom_bond", "_geom_bond_distance")
	if err := b.AddLoop(l3); err != nil {
		t.Errorf("distinct category rejected: %v", err)
	}
}

func TestAddLoopUncategorizedSkipsCategoryCheck(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	l1, err := NewLoop(nil, []string{"_a"})
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if err := b.AddLoop(l1); err != nil {
		t.Fatalf("first uncategorized loop rejected: %v", err)
	}
	l2, err := NewLoop(nil, []string{"_b"})
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if err := b.AddLoop(l2); err != nil {
		t.Errorf("second uncategorized loop: got %v, want nil (nil category is not subject to uniqueness)", err)
	}
}

func TestAddLoopItemNameUniquenessAcrossLoops(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	l1 := newNamedLoop(t, "cat1", "_shared")
	if err := b.AddLoop(l1); err != nil {
		t.Fatalf("first loop rejected: %v", err)
	}
	l2 := newNamedLoop(t, "cat2", "_shared")
	if err := b.AddLoop(l2); err != ErrDuplicateItem {
		t.Errorf("duplicate item name across loops: got %v, want ErrDuplicateItem", err)
	}
}

func TestNewLoopRejectsDuplicateNameInHeader(t *testing.T) {
	if _, err := NewLoop(nil, []string{"_a", "_A"}); err != ErrDuplicateItem {
		t.Errorf("got %v, want ErrDuplicateItem for names equal under normalization", err)
	}
}

func TestNewLoopRejectsEmptyNames(t *testing.T) {
	if _, err := NewLoop(nil, nil); err != ErrNullLoop {
		t.Errorf("got %v, want ErrNullLoop", err)
	}
}

func TestSetScalarAndGetScalar(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	if err := b.SetScalar("_cell_length_a", value.Char("5.4")); err != nil {
		t.Fatalf("SetScalar: %v", err)
	}
	v, ok := b.GetScalar("_cell_length_a")
	if !ok || v.(value.Char) != "5.4" {
		t.Errorf("GetScalar: got %v, %v", v, ok)
	}
	// Replacing an existing scalar updates the same row rather than
	// appending a second one to the reserved loop.
	if err := b.SetScalar("_cell_length_a", value.Char("5.5")); err != nil {
		t.Fatalf("SetScalar replace: %v", err)
	}
	v, _ = b.GetScalar("_cell_length_a")
	if v.(value.Char) != "5.5" {
		t.Errorf("expected replaced value, got %v", v)
	}
}

func TestSetScalarConflictsWithLoopedItem(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	l := newNamedLoop(t, "atom_site", "_atom_site_label")
	if err := b.AddLoop(l); err != nil {
		t.Fatalf("AddLoop: %v", err)
	}
	if err := b.SetScalar("_atom_site_label", value.Char("C1")); err != ErrDuplicateItem {
		t.Errorf("got %v, want ErrDuplicateItem", err)
	}
}

func TestPruneEmptyLoops(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	empty := newNamedLoop(t, "empty_cat", "_x")
	if err := b.AddLoop(empty); err != nil {
		t.Fatalf("AddLoop: %v", err)
	}
	nonEmpty := newNamedLoop(t, "full_cat", "_y")
	if err := nonEmpty.AddPacket(packetWith(t, "_y", value.Char("1"))); err != nil {
		t.Fatalf("AddPacket: %v", err)
	}
	if err := b.AddLoop(nonEmpty); err != nil {
		t.Fatalf("AddLoop: %v", err)
	}
	b.PruneEmptyLoops()
	if len(b.Loops()) != 1 {
		t.Fatalf("expected 1 loop after pruning, got %d", len(b.Loops()))
	}
	if b.Loops()[0].Category() == nil || *b.Loops()[0].Category() != "full_cat" {
		t.Errorf("expected the non-empty loop to survive pruning")
	}
}

func packetWith(t *testing.T, name string, v value.Value) Packet {
	t.Helper()
	p := NewPacket()
	p.Set(name, v)
	return p
}

func TestAddFrameDuplicateCode(t *testing.T) {
	b, err := NewBlock("b")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	f1, err := NewFrame("frame1")
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	if err := b.AddFrame(f1); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	f2, err := NewFrame("Frame1") // equivalent under normalization
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	if err := b.AddFrame(f2); err != ErrDuplicateCode {
		t.Errorf("got %v, want ErrDuplicateCode", err)
	}
}
