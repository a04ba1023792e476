package model

import (
	"github.com/comcifs/gocif/unicodeutil"
	"github.com/comcifs/gocif/value"
)

// Packet is an insertion-ordered mapping from item name to Value, keyed
// unique under CIF name normalization; the original (unnormalized) key
// form is preserved for enumeration. One row of a loop.
//
// Grounded on the same ordered-map-with-normalized-keys shape as
// value.Table, specialized to item names (spec.md §3 "Packet").
type Packet struct {
	order    []string // normalized names, in order of first insertion
	original map[string]string
	values   map[string]value.Value
}

// NewPacket returns an empty packet.
func NewPacket() Packet {
	return Packet{
		original: map[string]string{},
		values:   map[string]value.Value{},
	}
}

// Set inserts v under name, deep-copying it. If name is equivalent
// (under normalization) to an existing item, the stored value is
// replaced and the original form updates to name.
func (p *Packet) Set(name string, v value.Value) {
	if p.values == nil {
		*p = NewPacket()
	}
	nk := unicodeutil.Normalize(name)
	if _, ok := p.values[nk]; !ok {
		p.order = append(p.order, nk)
	}
	p.original[nk] = name
	p.values[nk] = v.Clone()
}

// Delete removes the item for a name equivalent to name, if present.
func (p *Packet) Delete(name string) {
	if p.values == nil {
		return
	}
	nk := unicodeutil.Normalize(name)
	if _, ok := p.values[nk]; !ok {
		return
	}
	delete(p.values, nk)
	delete(p.original, nk)
	for i, k := range p.order {
		if k == nk {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Get returns the value stored for a name equivalent to name.
func (p Packet) Get(name string) (value.Value, bool) {
	v, ok := p.values[unicodeutil.Normalize(name)]
	return v, ok
}

// Has reports whether the packet has a value for a name equivalent to
// name.
func (p Packet) Has(name string) bool {
	_, ok := p.values[unicodeutil.Normalize(name)]
	return ok
}

// Names returns the original (unnormalized) item names, in order of
// first insertion.
func (p Packet) Names() []string {
	out := make([]string, len(p.order))
	for i, k := range p.order {
		out[i] = p.original[k]
	}
	return out
}

// Len returns the number of items in the packet.
func (p Packet) Len() int { return len(p.order) }

// Clone returns a deep, independent copy.
func (p Packet) Clone() Packet {
	out := NewPacket()
	out.order = append([]string(nil), p.order...)
	for k, v := range p.original {
		out.original[k] = v
	}
	for k, v := range p.values {
		out.values[k] = v.Clone()
	}
	return out
}
