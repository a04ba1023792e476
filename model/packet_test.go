package model

import (
	"testing"

	"github.com/comcifs/gocif/value"
)

func TestPacketSetGetNormalizedKey(t *testing.T) {
	p := NewPacket()
	p.Set("_Atom_Site_Label", value.Char("C1"))
	v, ok := p.Get("_atom_site_label")
	if !ok || v.(value.Char) != "C1" {
		t.Fatalf("Get under normalization failed: %v, %v", v, ok)
	}
}

func TestPacketSetReplacePreservesOriginalForm(t *testing.T) {
	p := NewPacket()
	p.Set("_Label", value.Char("1"))
	p.Set("_label", value.Char("2"))
	if p.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", p.Len())
	}
	names := p.Names()
	if len(names) != 1 || names[0] != "_label" {
		t.Errorf("expected latest original form preserved, got %v", names)
	}
	v, _ := p.Get("_Label")
	if v.(value.Char) != "2" {
		t.Errorf("expected replaced value, got %v", v)
	}
}

func TestPacketCloneIndependent(t *testing.T) {
	p := NewPacket()
	p.Set("_a", value.Char("1"))
	clone := p.Clone()
	clone.Set("_a", value.Char("2"))
	v, _ := p.Get("_a")
	if v.(value.Char) != "1" {
		t.Errorf("mutating clone affected original packet")
	}
}

func TestPacketHas(t *testing.T) {
	p := NewPacket()
	if p.Has("_a") {
		t.Errorf("expected empty packet to not have _a")
	}
	p.Set("_a", value.Char("1"))
	if !p.Has("_a") {
		t.Errorf("expected packet to have _a after Set")
	}
}
