package model

import (
	"github.com/comcifs/gocif/unicodeutil"
	"github.com/comcifs/gocif/value"
)

// Loop is a named column set and its row vectors (packets), scoped to
// one container. Category is nil for an uncategorized loop, a pointer
// to "" for the reserved scalars loop, or a pointer to a non-empty
// category name. Spec.md §3 "Loop".
type Loop struct {
	category *string

	names         []string // normalized, loop column order
	originalNames map[string]string

	packets []Packet
}

// NewLoop constructs a loop with the given category and item names (in
// column order). A loop must declare at least one name (spec.md §4.2
// CIF_NULL_LOOP).
func NewLoop(category *string, names []string) (*Loop, error) {
	if len(names) == 0 {
		return nil, ErrNullLoop
	}
	l := &Loop{
		category:      category,
		originalNames: map[string]string{},
	}
	seen := map[string]bool{}
	for _, n := range names {
		nk := unicodeutil.Normalize(n)
		if seen[nk] {
			return nil, ErrDuplicateItem
		}
		seen[nk] = true
		l.names = append(l.names, nk)
		l.originalNames[nk] = n
	}
	return l, nil
}

// Category returns the loop's category: nil (no category), a pointer to
// "" (the reserved scalars loop), or a pointer to a category name.
func (l *Loop) Category() *string { return l.category }

// IsScalars reports whether this is the reserved scalars loop (category
// == "").
func (l *Loop) IsScalars() bool { return l.category != nil && *l.category == "" }

// Names returns the loop's item names in column order, in their
// original (unnormalized) form.
func (l *Loop) Names() []string {
	out := make([]string, len(l.names))
	for i, n := range l.names {
		out[i] = l.originalNames[n]
	}
	return out
}

// HasName reports whether name (under normalization) is one of the
// loop's columns.
func (l *Loop) HasName(name string) bool {
	nk := unicodeutil.Normalize(name)
	for _, n := range l.names {
		if n == nk {
			return true
		}
	}
	return false
}

// Len returns the number of packets (rows) currently in the loop.
func (l *Loop) Len() int { return len(l.packets) }

// AddItem adds a new column to the loop. Existing packets gain an
// Unknown value for it.
func (l *Loop) AddItem(name string) error {
	nk := unicodeutil.Normalize(name)
	if l.HasName(name) {
		return ErrDuplicateItem
	}
	l.names = append(l.names, nk)
	l.originalNames[nk] = name
	for i := range l.packets {
		l.packets[i].Set(name, value.Unknown{})
	}
	return nil
}

// RemoveItem drops a column (and its values) from the loop, including
// from every packet already present. Symmetric with AddItem, which
// back-fills Unknown into existing packets for a newly added column;
// RemoveItem must strip the column from them so every packet keeps
// providing exactly the loop's name set (spec.md §3).
func (l *Loop) RemoveItem(name string) error {
	nk := unicodeutil.Normalize(name)
	idx := -1
	for i, n := range l.names {
		if n == nk {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNoSuchLoop
	}
	l.names = append(l.names[:idx], l.names[idx+1:]...)
	delete(l.originalNames, nk)
	for i := range l.packets {
		l.packets[i].Delete(name)
	}
	return nil
}

// AddPacket deep-copies p and appends it as a new row. Every name in p
// must be one of the loop's declared columns (spec.md §3: "a packet
// provides exactly the loop's name set"); names the loop declares but p
// omits are filled with Unknown. The reserved scalars loop (category
// "") accepts at most one packet.
func (l *Loop) AddPacket(p Packet) error {
	if l.IsScalars() && len(l.packets) >= 1 {
		return ErrReservedLoop
	}
	for _, n := range p.Names() {
		if !l.HasName(n) {
			return ErrInvalidPacket
		}
	}
	row := NewPacket()
	for _, n := range l.names {
		orig := l.originalNames[n]
		if v, ok := p.Get(orig); ok {
			row.Set(orig, v)
		} else {
			row.Set(orig, value.Unknown{})
		}
	}
	l.packets = append(l.packets, row)
	return nil
}

// Packets returns a deep copy of every packet, in insertion order. Use
// NewIterator for a mutable, lifecycle-managed view (spec.md §4.5).
func (l *Loop) Packets() []Packet {
	out := make([]Packet, len(l.packets))
	for i, p := range l.packets {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns a deep, independent copy of the loop.
func (l *Loop) Clone() *Loop {
	out := &Loop{
		names:         append([]string(nil), l.names...),
		originalNames: map[string]string{},
	}
	if l.category != nil {
		c := *l.category
		out.category = &c
	}
	for k, v := range l.originalNames {
		out.originalNames[k] = v
	}
	for _, p := range l.packets {
		out.packets = append(out.packets, p.Clone())
	}
	return out
}
