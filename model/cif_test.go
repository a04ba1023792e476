package model

import "testing"

func TestCIFAddBlockDuplicateCode(t *testing.T) {
	c := New()
	b1, err := NewBlock("x")
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	if err := c.AddBlock(b1); err != nil {
		t.Fatalf("AddBlock: %v", err)
	}
	b2, err := NewBlock("X") // equivalent under normalization
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	if err := c.AddBlock(b2); err != ErrDuplicateCode {
		t.Errorf("got %v, want ErrDuplicateCode", err)
	}
}

func TestCIFCreateBlockInvalidCode(t *testing.T) {
	c := New()
	if _, err := c.CreateBlock(""); err != ErrEmptyCode {
		t.Errorf("got %v, want ErrEmptyCode", err)
	}
}

func TestCIFLookupBlock(t *testing.T) {
	c := New()
	if _, err := c.CreateBlock("crystal_1"); err != nil {
		t.Fatalf("CreateBlock: %v", err)
	}
	if _, found := c.LookupBlock("Crystal_1"); !found {
		t.Errorf("expected LookupBlock to find a case-equivalent code")
	}
	if _, found := c.LookupBlock("nope"); found {
		t.Errorf("expected LookupBlock to miss an absent code")
	}
}

func TestCIFCloneIsIndependent(t *testing.T) {
	c := New()
	if _, err := c.CreateBlock("b"); err != nil {
		t.Fatalf("CreateBlock: %v", err)
	}
	clone := c.Clone()
	if _, err := clone.CreateBlock("b2"); err != nil {
		t.Fatalf("CreateBlock on clone: %v", err)
	}
	if len(c.Blocks()) != 1 {
		t.Errorf("mutating clone affected original CIF, blocks=%d", len(c.Blocks()))
	}
}
